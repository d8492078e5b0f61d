package queues

import "strings"

// clusterHostFragments maps a hostname substring to the cluster it belongs
// to. Checked in order; first hit wins.
var clusterHostFragments = []struct {
	fragment string
	cluster  string
}{
	{"guillimin", "guillimin"},
	{"ms.m", "mammouth"},
	{"mp2.m", "mammouth"},
	{"helios", "helios"},
	{"hades", "hades"},
}

// DetectCluster maps a hostname to a known cluster name, or returns the
// empty string. The hostname is an explicit input so callers stay testable;
// the CLI passes os.Hostname().
func DetectCluster(hostname string) string {
	host := strings.ToLower(hostname)
	for _, entry := range clusterHostFragments {
		if strings.Contains(host, entry.fragment) {
			return entry.cluster
		}
	}
	return ""
}
