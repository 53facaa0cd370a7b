package arch

import (
	"slices"
	"strings"
)

// ProjectType is the kind of project being planned. Values other than the
// named constants are accepted and simply match no project-type rule.
type ProjectType string

const (
	ProjectWeb    ProjectType = "web"
	ProjectMobile ProjectType = "mobile"
)

// Scale is the expected size of the project.
type Scale string

const (
	ScaleSmall  Scale = "small"
	ScaleMedium Scale = "medium"
	ScaleLarge  Scale = "large"
)

// Tags recognised by the rule table.
const (
	TechMicroservices     = "microservices"
	TechServerless        = "serverless"
	TechMachineLearning   = "machine learning"
	TechDynamicContent    = "dynamic content"
	TechPushNotifications = "push notifications"

	PerfHighAvailability = "high availability"
	PerfLowLatency       = "low latency"
	PerfHighPerformance  = "high performance"
	PerfHighSecurity     = "high security"
)

// Requirement is the immutable input to [Analyze].
type Requirement struct {
	ProjectType  ProjectType `json:"project_type"`
	Scale        Scale       `json:"scale"`
	Technologies []string    `json:"technologies"`
	Budget       float64     `json:"budget"` // monthly USD
	Performance  []string    `json:"performance_requirements"`
}

// HasTechnology reports whether tag is among the requested technologies.
func (r Requirement) HasTechnology(tag string) bool { return slices.Contains(r.Technologies, tag) }

// HasPerformance reports whether tag is among the performance requirements.
func (r Requirement) HasPerformance(tag string) bool { return slices.Contains(r.Performance, tag) }

// ParseTags splits a comma-separated list, trims whitespace around each
// tag and drops empty entries.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
