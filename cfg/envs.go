package cfg

import (
	"fmt"
	"os"
	"strings"
)

type funcApplier interface {
	// tryApply returns ok=false if s isn't meant for this applier.
	tryApply(s string) (result string, ok bool, err error)
}

func applyFuncs(appliers []funcApplier, s string) (string, error) {
	for _, a := range appliers {
		result, ok, err := a.tryApply(s)
		if err != nil {
			return "", err
		}
		if ok {
			return result, nil
		}
	}

	return s, nil
}

type envs struct{}

func (e *envs) tryApply(s string) (string, bool, error) {
	// escape symbols.
	if strings.HasPrefix(s, `\env(`) {
		s = strings.Replace(s, `\env(`, "env(", 1)
		return s, true, nil
	}

	if !strings.HasPrefix(s, "env(") || !strings.HasSuffix(s, ")") {
		return "", false, nil
	}

	envName := strings.TrimPrefix(s, "env(")
	envName = strings.TrimSuffix(envName, ")")

	env, ok := os.LookupEnv(envName)
	if !ok {
		return "", false, fmt.Errorf("can't GetEnv: %s", envName)
	}
	return env, true, nil
}
