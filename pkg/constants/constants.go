// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".jigsaw"
	LogDir      = "logs"
	PackagesDir = "packages"
	CacheDir    = "cache"

	LogFileName      = "jigsaw.log"
	ManifestFileName = "jigsaw.yaml"
	VersionFileName  = "VERSION"
	ArchiveSuffix    = ".tar.gz"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	// Config keys
	ConfigRegistryURLKey = "crossroads-url"
	ConfigIndexURLKey    = "package-index-url"
	ConfigIndexTokenKey  = "package-index-token"
	ConfigDefaultEnvKey  = "default-env"

	// Environment variables
	RegistryURLEnvVar = "JIGSAW_CROSSROADS_URL"
	IndexURLEnvVar    = "JIGSAW_INDEX_URL"
	IndexTokenEnvVar  = "JIGSAW_INDEX_TOKEN"

	// Known environments
	StagingEnv    = "stag"
	ProductionEnv = "prod"

	DefaultRegistryURL = "https://crossroads.inyourarea.co.uk"
	DefaultIndexURL    = "https://pkg.inyourarea.co.uk"

	DefaultTestCommand = "go test ./..."

	// Client defaults, carried over from the generic-cli retry policy
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryElapsed   = 30 * time.Second
	DefaultRetryWait      = 1 * time.Second
	DefaultRetryMaxWait   = 60 * time.Second
	DefaultHostCacheTTL   = 60 * time.Minute

	APIRequestTimeout = 30 * time.Second

	PublishConcurrency = 4

	GitRepoCommitName  = "jigsaw-cli"
	GitRepoCommitEmail = "platform@inyourarea.co.uk"
)
