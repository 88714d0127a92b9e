// Package raw reads the LOG_* environment before the logger exists
// it must not import the logger package, the logger boots through it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// LogPrefix namespaces every logger knob
const LogPrefix = "LOG_"

// Conf is a prefixed view over the environment
type Conf struct{ prefix string }

// Log returns the view over the LOG_* keys
func Log() Conf { return Conf{prefix: LogPrefix} }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get returns the trimmed value or def when unset
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// Lower is Get folded to lower case, for enum style knobs like LEVEL and FORMAT
func (c Conf) Lower(key, def string) string { return strings.ToLower(c.Get(key, def)) }

// GetBool accepts 1, true and yes in any case, anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	switch c.Lower(key, "") {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt returns def for unset, malformed or negative values
func (c Conf) GetInt(key string, def int) int {
	v := c.lookup(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// GetFields parses "k=v,k=v" into a map, pairs without a key are skipped
func (c Conf) GetFields(key string) map[string]string {
	v := c.lookup(key)
	if v == "" {
		return nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(v, ",") {
		k, val, _ := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(val)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
