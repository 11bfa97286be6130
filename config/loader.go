package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads name.yaml from the working directory or one of dirs, relative
// to it, then overlays environment variables. POSTGRES_SSLMODE overrides
// postgres.sslMode: each variable maps onto the longest matching YAML path.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	keys := newEnvKeyIndex(k.Raw())
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return keys.resolve(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{"."}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, name+".yaml")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

// envKeyIndex maps the normalized form of every YAML path prefix
// (segments joined by "_") to its dotted spelling in the file.
type envKeyIndex map[string]string

func newEnvKeyIndex(raw map[string]any) envKeyIndex {
	idx := envKeyIndex{}
	idx.add(raw, "", "")

	return idx
}

func (idx envKeyIndex) add(node map[string]any, normPrefix, dotPrefix string) {
	for key, value := range node {
		norm, dotted := normalizeSegment(key), key
		if normPrefix != "" {
			norm, dotted = normPrefix+"_"+norm, dotPrefix+"."+key
		}
		idx[norm] = dotted

		if child, ok := value.(map[string]any); ok {
			idx.add(child, norm, dotted)
		}
	}
}

// resolve turns an environment variable name into a koanf path. Segments
// past the longest known prefix are lowercased as they are.
func (idx envKeyIndex) resolve(envKey string) string {
	var segments []string
	for _, s := range strings.Split(strings.ToLower(envKey), "_") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	for n := len(segments); n > 0; n-- {
		dotted, ok := idx[strings.Join(segments[:n], "_")]
		if !ok {
			continue
		}

		return strings.Join(append([]string{dotted}, segments[n:]...), ".")
	}

	return strings.Join(segments, ".")
}

func normalizeSegment(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads read replicas from POSTGRES_REPLICAS_<n>_HOST,
// _PORT, _USERNAME and _PASSWORD, stopping at the first index without a
// host and port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		replica, ok := replicaFromEnv(i)
		if !ok {
			return replicas
		}
		replicas = append(replicas, replica)
	}
}

func replicaFromEnv(i int) (postgres.ConnectionConfig, bool) {
	lookup := func(field string) string {
		return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
	}

	host, port := lookup("HOST"), lookup("PORT")
	if host == "" || port == "" {
		return postgres.ConnectionConfig{}, false
	}

	return postgres.ConnectionConfig{
		Host:     host,
		Port:     port,
		UserName: lookup("USERNAME"),
		Password: lookup("PASSWORD"),
	}, true
}
