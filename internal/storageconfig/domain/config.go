// Package domain holds the platform object-storage configuration.
package domain

import (
	"strings"
	"time"
)

// Config is the single platform-wide storage configuration row.
type Config struct {
	ID                       string
	Bucket                   string
	Region                   string
	CloudFrontDistributionID string
	CloudFrontDomain         string
	UpdatedByUserID          string
	UpdatedAt                time.Time
}

// Input is the caller-supplied part of a storage configuration.
type Input struct {
	Bucket                   string
	Region                   string
	CloudFrontDistributionID string
	CloudFrontDomain         string
}

// Normalize trims every field and strips a scheme or trailing slash from the CloudFront domain.
func (in Input) Normalize() Input {
	domain := strings.TrimSpace(in.CloudFrontDomain)
	domain = strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://")
	return Input{
		Bucket:                   strings.TrimSpace(in.Bucket),
		Region:                   strings.TrimSpace(in.Region),
		CloudFrontDistributionID: strings.TrimSpace(in.CloudFrontDistributionID),
		CloudFrontDomain:         strings.TrimSuffix(domain, "/"),
	}
}

// Validate returns a message describing the first invalid field, or "".
func (in Input) Validate() string {
	switch {
	case in.Bucket == "":
		return "storage bucket is required"
	case in.Region == "":
		return "storage region is required"
	}
	return ""
}
