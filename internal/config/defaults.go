// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EnvelopeMode:  "gcm",
			TokenIssuer:   "go-cred-keeper",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{
			Files: Files{
				Backend: "local",
				Dir:     "./files",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
			MetricsPath:    "/metrics",
		},
		Events: Events{
			SubjectPrefix: "credkeeper",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 15 * time.Second,
			RetryCount:     2,
			ChatAddress:    "http://localhost:8000",
		},
		Vault: Vault{
			Backend:     "sqlite",
			Path:        "credkeeper-vault.db",
			DownloadDir: ".",
		},
		Workers: Workers{
			StatsInterval: time.Minute,
		},
	}
}
