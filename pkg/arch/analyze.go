package arch

// Budget thresholds (monthly USD) that select the larger variant of a rule.
const (
	MultiAZBudget         = 10000.0
	LargeMicroBudget      = 15000.0
	HighPerfServerlessMin = 5000.0
)

// Descriptor names.
const (
	NameWebMultiAZ         = "High-availability multi-AZ web architecture"
	NameWebHA              = "High-availability web architecture"
	NameWebLowLatency      = "Low-latency web architecture"
	NameMicroservicesLarge = "Large-scale microservices architecture"
	NameMicroservices      = "Microservices architecture"
	NameServerlessHighPerf = "High-performance serverless architecture"
	NameServerless         = "Basic serverless architecture"
	NameMobileBackend      = "Mobile backend architecture"
	NameMachineLearning    = "Machine learning architecture"
	NameBaseline           = "Basic web architecture"
)

// rule is one entry of the decision table. build is only called when match
// returned true and must return a freshly allocated descriptor.
type rule struct {
	name    string
	summary string
	match   func(Requirement) bool
	build   func(Requirement) Descriptor
}

var rules = []rule{
	{
		name:    "web-high-availability",
		summary: `project type "web" and "high availability"; multi-AZ when large and budget > 10000`,
		match: func(r Requirement) bool {
			return r.ProjectType == ProjectWeb && r.HasPerformance(PerfHighAvailability)
		},
		build: func(r Requirement) Descriptor {
			if r.Scale == ScaleLarge && r.Budget > MultiAZBudget {
				return Descriptor{Name: NameWebMultiAZ, Components: []Kind{
					KindRoute53, KindCloudFront, KindELB, KindEC2AutoScaling,
					KindRDSMultiAZ, KindElastiCache, KindS3,
				}}
			}
			return Descriptor{Name: NameWebHA, Components: []Kind{
				KindELB, KindEC2AutoScaling, KindRDS,
			}}
		},
	},
	{
		name:    "web-low-latency",
		summary: `project type "web" and "low latency"; API Gateway + Lambda with "dynamic content"`,
		match: func(r Requirement) bool {
			return r.ProjectType == ProjectWeb && r.HasPerformance(PerfLowLatency)
		},
		build: func(r Requirement) Descriptor {
			d := Descriptor{Name: NameWebLowLatency, Components: []Kind{
				KindCloudFront, KindS3, KindLambdaEdge,
			}}
			if r.HasTechnology(TechDynamicContent) {
				d.Components = append(d.Components, KindAPIGateway, KindLambda)
			}
			return d
		},
	},
	{
		name:    "microservices",
		summary: `"microservices" technology; adds ElastiCache + SQS when large and budget > 15000`,
		match: func(r Requirement) bool {
			return r.HasTechnology(TechMicroservices)
		},
		build: func(r Requirement) Descriptor {
			if r.Scale == ScaleLarge && r.Budget > LargeMicroBudget {
				return Descriptor{Name: NameMicroservicesLarge, Components: []Kind{
					KindECS, KindECR, KindAPIGateway, KindRDS, KindElastiCache, KindSQS,
				}}
			}
			return Descriptor{Name: NameMicroservices, Components: []Kind{
				KindECS, KindECR, KindAPIGateway, KindRDS,
			}}
		},
	},
	{
		name:    "serverless",
		summary: `"serverless" technology; adds ElastiCache + S3 for "high performance" and budget > 5000`,
		match: func(r Requirement) bool {
			return r.HasTechnology(TechServerless)
		},
		build: func(r Requirement) Descriptor {
			if r.HasPerformance(PerfHighPerformance) && r.Budget > HighPerfServerlessMin {
				return Descriptor{Name: NameServerlessHighPerf, Components: []Kind{
					KindAPIGateway, KindLambda, KindDynamoDB, KindElastiCache, KindS3,
				}}
			}
			return Descriptor{Name: NameServerless, Components: []Kind{
				KindAPIGateway, KindLambda, KindDynamoDB,
			}}
		},
	},
	{
		name:    "mobile-backend",
		summary: `project type "mobile"; adds SNS with "push notifications"`,
		match: func(r Requirement) bool {
			return r.ProjectType == ProjectMobile
		},
		build: func(r Requirement) Descriptor {
			d := Descriptor{Name: NameMobileBackend, Components: []Kind{
				KindAPIGateway, KindLambda, KindDynamoDB, KindS3,
			}}
			if r.HasTechnology(TechPushNotifications) {
				d.Components = append(d.Components, KindSNS)
			}
			return d
		},
	},
	{
		name:    "machine-learning",
		summary: `"machine learning" technology`,
		match: func(r Requirement) bool {
			return r.HasTechnology(TechMachineLearning)
		},
		build: func(Requirement) Descriptor {
			return Descriptor{Name: NameMachineLearning, Components: []Kind{
				KindSageMaker, KindS3, KindEC2, KindLambda,
			}}
		},
	},
}

// Analyze returns the architectures recommended for req, in rule order.
// The result always contains at least one descriptor.
func Analyze(req Requirement) []Descriptor {
	var out []Descriptor
	for _, r := range rules {
		if !r.match(req) {
			continue
		}
		out = append(out, augment(r.build(req), req))
	}
	if len(out) == 0 {
		out = append(out, Baseline())
	}
	return out
}

// Baseline returns the fallback descriptor used when no rule matches.
func Baseline() Descriptor {
	return Descriptor{Name: NameBaseline, Components: []Kind{KindEC2, KindRDS}}
}

// augment appends the security and monitoring components shared by every
// rule-produced descriptor.
func augment(d Descriptor, req Requirement) Descriptor {
	if req.HasPerformance(PerfHighSecurity) {
		d.Components = append(d.Components, KindWAF)
	}
	if req.Scale != ScaleSmall {
		d.Components = append(d.Components, KindCloudWatch)
	}
	return d
}

// RuleInfo describes one entry of the rule table for display.
type RuleInfo struct {
	Order   int
	Name    string
	Summary string
}

// Rules returns the rule table in evaluation order, followed by the
// fallback entry.
func Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(rules)+1)
	for i, r := range rules {
		out = append(out, RuleInfo{Order: i + 1, Name: r.name, Summary: r.summary})
	}
	return append(out, RuleInfo{
		Order:   len(rules) + 1,
		Name:    "fallback",
		Summary: "no rule matched; EC2 + RDS, never augmented",
	})
}
