package compose

import "github.com/matzehuels/cloudarch/pkg/arch"

// NodeType is the rendering role a kind collapses to. It doubles as the
// node ID, so each type appears at most once per diagram.
type NodeType string

const (
	NodeDNS           NodeType = "dns"
	NodeCDN           NodeType = "cdn"
	NodeLoadBalancer  NodeType = "load_balancer"
	NodeCompute       NodeType = "compute"
	NodeDatabase      NodeType = "database"
	NodeCache         NodeType = "cache"
	NodeStorage       NodeType = "storage"
	NodeAPIGateway    NodeType = "api_gateway"
	NodeFunction      NodeType = "function"
	NodeDocumentStore NodeType = "document_store"
	NodeFirewall      NodeType = "firewall"
	NodeMonitoring    NodeType = "monitoring"
	NodeContainers    NodeType = "containers"
	NodeRegistry      NodeType = "registry"
	NodeQueue         NodeType = "queue"
	NodeNotifications NodeType = "notifications"
	NodeMLPlatform    NodeType = "ml_platform"
)

var nodeTypes = map[arch.Kind]NodeType{
	arch.KindRoute53:        NodeDNS,
	arch.KindCloudFront:     NodeCDN,
	arch.KindELB:            NodeLoadBalancer,
	arch.KindEC2:            NodeCompute,
	arch.KindEC2AutoScaling: NodeCompute,
	arch.KindRDS:            NodeDatabase,
	arch.KindRDSMultiAZ:     NodeDatabase,
	arch.KindElastiCache:    NodeCache,
	arch.KindS3:             NodeStorage,
	arch.KindAPIGateway:     NodeAPIGateway,
	arch.KindLambda:         NodeFunction,
	arch.KindLambdaEdge:     NodeFunction,
	arch.KindDynamoDB:       NodeDocumentStore,
	arch.KindWAF:            NodeFirewall,
	arch.KindCloudWatch:     NodeMonitoring,
	arch.KindECS:            NodeContainers,
	arch.KindECR:            NodeRegistry,
	arch.KindSQS:            NodeQueue,
	arch.KindSNS:            NodeNotifications,
	arch.KindSageMaker:      NodeMLPlatform,
}

var labels = map[NodeType]string{
	NodeDNS:           "DNS",
	NodeCDN:           "CDN",
	NodeLoadBalancer:  "load balancer",
	NodeCompute:       "web server",
	NodeDatabase:      "database",
	NodeCache:         "cache",
	NodeStorage:       "storage",
	NodeAPIGateway:    "API gateway",
	NodeFunction:      "function",
	NodeDocumentStore: "NoSQL DB",
	NodeFirewall:      "web application firewall",
	NodeMonitoring:    "monitoring",
	NodeContainers:    "container service",
	NodeRegistry:      "container registry",
	NodeQueue:         "message queue",
	NodeNotifications: "push notifications",
	NodeMLPlatform:    "ML platform",
}

// TypeOf returns the node type for k, or false when k is not drawn.
func TypeOf(k arch.Kind) (NodeType, bool) {
	t, ok := nodeTypes[k]
	return t, ok
}

// Label returns the human-readable label for t.
func Label(t NodeType) string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}
