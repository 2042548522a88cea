// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const (
	productName  = "go-jmap-sync"
	notAvailable = "N/A"
)

// AppBuildInfo is the build metadata injected by linker flags. It is printed
// at startup and identifies the client to the JMAP server.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion, BuildDate and BuildCommit return "N/A" for values that were
// not injected.
func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// UserAgent is the User-Agent header value sent with every request, e.g.
// "go-jmap-sync/1.2.0 (3f2a1c9)". Development builds report "dev".
func (a AppBuildInfo) UserAgent() string {
	version := a.buildVersion
	if version == "" {
		version = "dev"
	}
	if a.buildCommit == "" {
		return productName + "/" + version
	}
	return fmt.Sprintf("%s/%s (%s)", productName, version, a.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
