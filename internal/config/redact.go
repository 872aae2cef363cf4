// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"regexp"
)

const redactedValue = "xxxxx"

// keyword/value DSNs such as "host=db password=secret"
var dsnPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// Redacted returns a copy of cfg that is safe to log: the redis password is
// masked and credentials inside the database DSN are replaced.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Storage.Cache.Password != "" {
		cfg.Storage.Cache.Password = redactedValue
	}
	cfg.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)

	return cfg
}

func redactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redactedValue)
		}
		return u.String()
	}

	return dsnPasswordPattern.ReplaceAllString(dsn, "${1}"+redactedValue)
}
