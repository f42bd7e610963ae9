package domain

import "testing"

func TestInputNormalize(t *testing.T) {
	in := Input{Bucket: " docs ", Region: "us-east-1", CloudFrontDomain: "https://d111.cloudfront.net/"}.Normalize()
	if in.Bucket != "docs" {
		t.Errorf("Bucket = %q, want %q", in.Bucket, "docs")
	}
	if in.CloudFrontDomain != "d111.cloudfront.net" {
		t.Errorf("CloudFrontDomain = %q, want %q", in.CloudFrontDomain, "d111.cloudfront.net")
	}
	if msg := (Input{Bucket: "docs"}).Validate(); msg != "storage region is required" {
		t.Errorf("Validate() = %q", msg)
	}
}
