// Package queues resolves per-cluster batch queue metadata from on-disk
// config files. An unknown cluster is not an error: the registry answers with
// an empty mapping and the caller decides what to do without queue hints.
package queues

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/qdispatch/qdispatch/pkgs/errors"
)

// QueueAttributes describes one queue of a cluster.
type QueueAttributes struct {
	MaxWalltime  string   `koanf:"max_walltime"`
	CoresPerNode int      `koanf:"cores"`
	GPUsPerNode  int      `koanf:"gpus"`
	MemPerNode   string   `koanf:"mem"`
	Modules      []string `koanf:"modules"`
}

// Registry loads queue definitions from <configDir>/<cluster>.yaml files.
type Registry struct {
	configDir string
}

// NewRegistry creates a registry over the given config directory. An empty
// dir falls back to DefaultConfigDir.
func NewRegistry(configDir string) *Registry {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return &Registry{configDir: configDir}
}

// DefaultConfigDir is the per-user cluster config location,
// e.g. ~/.config/qdispatch/clusters.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "clusters")
	}
	return filepath.Join(base, "qdispatch", "clusters")
}

// AvailableQueues returns the queues defined for a cluster, keyed by queue
// name. An empty cluster name, a missing config file, or a config without a
// queues section all yield an empty mapping and no error. A file that exists
// but cannot be read or parsed is a CONFIG_PARSE_ERROR.
func (r *Registry) AvailableQueues(cluster string) (map[string]QueueAttributes, error) {
	queues := map[string]QueueAttributes{}
	if cluster == "" {
		return queues, nil
	}

	path := filepath.Join(r.configDir, cluster+".yaml")
	content, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return queues, nil
	}
	if err != nil {
		return nil, errors.NewConfigParseError(path, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, errors.NewConfigParseError(path, err)
	}
	if err := k.Unmarshal("queues", &queues); err != nil {
		return nil, errors.NewConfigParseError(path, err)
	}
	if queues == nil {
		queues = map[string]QueueAttributes{}
	}
	return queues, nil
}
