package arch

import "slices"

// Kind identifies a cloud service role within an architecture.
// Kinds carry no state beyond their tag.
type Kind string

const (
	KindRoute53        Kind = "Route53"
	KindCloudFront     Kind = "CloudFront"
	KindELB            Kind = "ELB"
	KindEC2            Kind = "EC2"
	KindEC2AutoScaling Kind = "EC2 Auto Scaling"
	KindRDS            Kind = "RDS"
	KindRDSMultiAZ     Kind = "RDS Multi-AZ"
	KindElastiCache    Kind = "ElastiCache"
	KindS3             Kind = "S3"
	KindAPIGateway     Kind = "API Gateway"
	KindLambda         Kind = "Lambda"
	KindLambdaEdge     Kind = "Lambda@Edge"
	KindDynamoDB       Kind = "DynamoDB"
	KindWAF            Kind = "WAF"
	KindCloudWatch     Kind = "CloudWatch"
	KindECS            Kind = "ECS"
	KindECR            Kind = "ECR"
	KindSQS            Kind = "SQS"
	KindSNS            Kind = "SNS"
	KindSageMaker      Kind = "SageMaker"
)

// Kinds lists every known kind in glossary order.
var Kinds = []Kind{
	KindRoute53, KindCloudFront, KindELB,
	KindEC2, KindEC2AutoScaling,
	KindRDS, KindRDSMultiAZ,
	KindElastiCache, KindS3, KindAPIGateway,
	KindLambda, KindLambdaEdge,
	KindDynamoDB, KindWAF, KindCloudWatch,
	KindECS, KindECR, KindSQS, KindSNS, KindSageMaker,
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Descriptor is a named bundle of kinds representing one recommended
// topology. Components may contain duplicates; renderers collapse them.
type Descriptor struct {
	Name       string `json:"name"`
	Components []Kind `json:"components"`
}

// Has reports whether the descriptor contains k.
func (d Descriptor) Has(k Kind) bool { return slices.Contains(d.Components, k) }
