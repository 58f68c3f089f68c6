package app

import (
	"net/url"
	"strings"
)

// pgxOnlyParams are accepted by pgx but forwarded by lib/pq to the server
// as runtime parameters, where they fail the startup handshake.
var pgxOnlyParams = []string{"disable_prepared_binary_result", "pool_max_conns", "pool_min_conns"}

// normalizeDBURL prepares a postgres:// URL for lib/pq. When
// disablePreparedBinary is false, parameters are sent in binary form in a
// single round trip (binary_parameters=yes). Explicit values are kept.
func normalizeDBURL(raw string, disablePreparedBinary bool, applicationName string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	for _, key := range pgxOnlyParams {
		query.Del(key)
	}
	if query.Get("binary_parameters") == "" && !disablePreparedBinary {
		query.Set("binary_parameters", "yes")
	}
	if query.Get("application_name") == "" && strings.TrimSpace(applicationName) != "" {
		query.Set("application_name", strings.TrimSpace(applicationName))
	}
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
