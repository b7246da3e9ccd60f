package cfg

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/bitly/go-simplejson"
	"github.com/ozontech/numscan/logger"
	"sigs.k8s.io/yaml"
)

const (
	KindDigit  = "digit"
	KindAtoi   = "atoi"
	KindLength = "length"
)

var ErrUnknownKind = errors.New("unknown suite kind")

// Config holds extra self-test cases keyed by suite kind.
type Config struct {
	Suites map[string][]CaseConfig
}

type CaseConfig struct {
	Name  string
	Input string
	Want  int64
}

func NewConfig() *Config {
	return &Config{
		Suites: make(map[string][]CaseConfig, 3),
	}
}

// Kinds returns suite kinds present in the config, sorted.
func (c *Config) Kinds() []string {
	kinds := make([]string, 0, len(c.Suites))
	for kind := range c.Suites {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}

func NewConfigFromFile(path string) (*Config, error) {
	logger.Infof("reading config %q", path)
	yamlContents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file %q: %w", path, err)
	}

	return ParseConfig(yamlContents)
}

func ParseConfig(yamlContents []byte) (*Config, error) {
	jsonContents, err := yaml.YAMLToJSON(yamlContents)
	if err != nil {
		return nil, fmt.Errorf("can't parse config yaml: %w", err)
	}

	json, err := simplejson.NewJson(jsonContents)
	if err != nil {
		return nil, fmt.Errorf("can't convert config to json: %w", err)
	}

	return parseConfig(json, []funcApplier{&envs{}})
}

func parseConfig(json *simplejson.Json, appliers []funcApplier) (*Config, error) {
	config := NewConfig()

	suitesJSON, has := json.CheckGet("suites")
	if !has {
		return config, nil
	}

	suites, err := suitesJSON.Map()
	if err != nil {
		return nil, fmt.Errorf("suites must be a map: %w", err)
	}

	for kind := range suites {
		if kind != KindDigit && kind != KindAtoi && kind != KindLength {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}

		cases, err := parseCases(kind, suitesJSON.Get(kind), appliers)
		if err != nil {
			return nil, err
		}
		config.Suites[kind] = cases
	}

	logger.Infof("config parsed, found %d suites", len(config.Suites))

	return config, nil
}

func parseCases(kind string, json *simplejson.Json, appliers []funcApplier) ([]CaseConfig, error) {
	arr, err := json.Array()
	if err != nil {
		return nil, fmt.Errorf("suite %q must be a list: %w", kind, err)
	}

	cases := make([]CaseConfig, 0, len(arr))
	for i := range arr {
		node := json.GetIndex(i)

		input, err := node.Get("input").String()
		if err != nil {
			return nil, fmt.Errorf("suite %q case %d: input must be a string: %w", kind, i, err)
		}
		input, err = applyFuncs(appliers, input)
		if err != nil {
			return nil, fmt.Errorf("suite %q case %d: %w", kind, i, err)
		}

		want, err := node.Get("want").Int64()
		if err != nil {
			return nil, fmt.Errorf("suite %q case %d: want must be an integer: %w", kind, i, err)
		}

		if kind == KindDigit && len(input) != 1 {
			return nil, fmt.Errorf("suite %q case %d: input must be a single character, got %q", kind, i, input)
		}

		name := fmt.Sprintf("%s_%d", kind, i)
		if nameJSON, has := node.CheckGet("name"); has {
			name, err = nameJSON.String()
			if err != nil {
				return nil, fmt.Errorf("suite %q case %d: name must be a string: %w", kind, i, err)
			}
		}

		cases = append(cases, CaseConfig{Name: name, Input: input, Want: want})
	}

	return cases, nil
}
