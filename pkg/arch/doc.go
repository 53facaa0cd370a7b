// Package arch maps project requirements to canned cloud architectures.
//
// # Overview
//
// [Analyze] runs a fixed, ordered rule table over a [Requirement] and returns
// one [Descriptor] per rule that fires. Rules are independent: a request for
// a large microservices system that also lists "serverless" yields both a
// microservices and a serverless descriptor. When no rule fires a single
// baseline descriptor (EC2 + RDS) is returned, so the result is never empty.
//
// # Rules
//
// Rules are evaluated in this order; within a rule the large or high-budget
// variant is checked first:
//
//  1. Web + high availability (multi-AZ when large and budget > 10000)
//  2. Web + low latency (adds API Gateway + Lambda for dynamic content)
//  3. Microservices (large-scale when large and budget > 15000)
//  4. Serverless (high-performance when requested and budget > 5000)
//  5. Mobile backend (adds SNS for push notifications)
//  6. Machine learning
//
// Every descriptor produced by rules 1-6 is augmented once: WAF is appended
// for "high security" and CloudWatch for any scale other than small. The
// baseline fallback is never augmented.
//
// # Usage
//
//	req := arch.Requirement{
//	    ProjectType: arch.ProjectWeb,
//	    Scale:       arch.ScaleLarge,
//	    Budget:      12000,
//	    Performance: []string{arch.PerfHighAvailability},
//	}
//	for _, d := range arch.Analyze(req) {
//	    fmt.Println(d.Name, d.Components)
//	}
//
// Analyze is pure and deterministic; it never returns an error. Unknown tags
// simply match no rule.
package arch
