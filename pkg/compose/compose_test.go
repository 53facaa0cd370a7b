package compose

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/dag"
)

func build(t *testing.T, kinds ...arch.Kind) *dag.DAG {
	t.Helper()
	g, err := Build(arch.Descriptor{Name: "test", Components: kinds}, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

func hasEdge(g *dag.DAG, from, to NodeType) bool {
	return g.HasEdge(string(from), string(to))
}

func TestComposeCollapsesVariants(t *testing.T) {
	g := build(t,
		arch.KindEC2, arch.KindEC2AutoScaling,
		arch.KindRDS, arch.KindRDSMultiAZ,
		arch.KindLambda, arch.KindLambdaEdge,
		arch.KindS3, arch.KindS3,
	)

	want := []string{"compute", "database", "function", "storage"}
	if got := dag.NodeIDs(g.Nodes()); !slices.Equal(got, want) {
		t.Errorf("nodes = %v, want %v", got, want)
	}

	n, _ := g.Node(string(NodeCompute))
	if n.Label != "web server" || n.Service != string(arch.KindEC2) {
		t.Errorf("compute node = %+v, want label %q service %q", n, "web server", arch.KindEC2)
	}
}

func TestComposeSkipsUnknownKinds(t *testing.T) {
	g := build(t, "Kinesis", arch.KindEC2, "", arch.KindRDS)

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if !hasEdge(g, NodeCompute, NodeDatabase) {
		t.Error("missing compute -> database")
	}
}

func TestComposeLoadBalancerToCompute(t *testing.T) {
	with := build(t, arch.KindELB, arch.KindEC2AutoScaling, arch.KindRDS)
	if !hasEdge(with, NodeLoadBalancer, NodeCompute) {
		t.Error("missing load_balancer -> compute")
	}
	if !hasEdge(with, NodeCompute, NodeDatabase) {
		t.Error("missing compute -> database")
	}

	without := build(t, arch.KindELB, arch.KindRDS)
	if without.OutDegree(string(NodeLoadBalancer)) != 0 {
		t.Errorf("load_balancer has %d outgoing edges without compute, want 0", without.OutDegree(string(NodeLoadBalancer)))
	}
	if without.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", without.EdgeCount())
	}
}

func TestComposeDNSRouting(t *testing.T) {
	tests := []struct {
		name  string
		kinds []arch.Kind
		want  NodeType
	}{
		{"prefers cdn", []arch.Kind{arch.KindELB, arch.KindRoute53, arch.KindCloudFront}, NodeCDN},
		{"then load balancer", []arch.Kind{arch.KindRoute53, arch.KindEC2, arch.KindELB}, NodeLoadBalancer},
		{"else first other node", []arch.Kind{arch.KindRoute53, arch.KindECS, arch.KindRDS}, NodeContainers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.kinds...)
			children := g.Children(string(NodeDNS))
			if len(children) != 1 {
				t.Fatalf("dns has %d targets, want exactly 1", len(children))
			}
			if children[0] != string(tt.want) {
				t.Errorf("dns -> %s, want %s", children[0], tt.want)
			}
		})
	}
}

func TestComposeDNSExactlyOneTarget(t *testing.T) {
	for _, k := range arch.Kinds {
		if k == arch.KindRoute53 {
			continue
		}
		t.Run(string(k), func(t *testing.T) {
			g := build(t, arch.KindRoute53, k)
			if got := g.OutDegree(string(NodeDNS)); got != 1 {
				t.Errorf("dns out-degree = %d, want 1", got)
			}
		})
	}

	alone := build(t, arch.KindRoute53)
	if alone.EdgeCount() != 0 {
		t.Errorf("lone dns drew %d edges, want 0", alone.EdgeCount())
	}
}

func TestComposeCDNRouting(t *testing.T) {
	tests := []struct {
		name  string
		kinds []arch.Kind
		want  NodeType
	}{
		{"prefers storage", []arch.Kind{arch.KindCloudFront, arch.KindAPIGateway, arch.KindS3}, NodeStorage},
		{"then api gateway", []arch.Kind{arch.KindCloudFront, arch.KindLambda, arch.KindAPIGateway}, NodeAPIGateway},
		{"else any non-entry node", []arch.Kind{arch.KindRoute53, arch.KindCloudFront, arch.KindELB}, NodeLoadBalancer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.kinds...)
			children := g.Children(string(NodeCDN))
			if len(children) != 1 || children[0] != string(tt.want) {
				t.Errorf("cdn -> %v, want [%s]", children, tt.want)
			}
		})
	}

	onlyEntries := build(t, arch.KindRoute53, arch.KindCloudFront)
	if onlyEntries.OutDegree(string(NodeCDN)) != 0 {
		t.Error("cdn routed back to dns")
	}
}

func TestComposeCacheAndQueueSources(t *testing.T) {
	t.Run("compute preferred", func(t *testing.T) {
		g := build(t, arch.KindLambda, arch.KindEC2, arch.KindElastiCache, arch.KindSQS)
		if !hasEdge(g, NodeCompute, NodeCache) || hasEdge(g, NodeFunction, NodeCache) {
			t.Error("cache should be fed by compute only")
		}
		e, ok := g.Edge(string(NodeCompute), string(NodeQueue))
		if !ok {
			t.Fatal("missing compute -> queue")
		}
		if e.Style != dag.EdgeDotted {
			t.Errorf("queue edge style = %q, want dotted", e.Style)
		}
	})

	t.Run("function fallback", func(t *testing.T) {
		g := build(t, arch.KindAPIGateway, arch.KindLambda, arch.KindDynamoDB, arch.KindElastiCache)
		if !hasEdge(g, NodeFunction, NodeCache) {
			t.Error("missing function -> cache")
		}
		if !hasEdge(g, NodeAPIGateway, NodeFunction) || !hasEdge(g, NodeFunction, NodeDocumentStore) {
			t.Error("missing serverless chain")
		}
	})

	t.Run("no source", func(t *testing.T) {
		g := build(t, arch.KindECS, arch.KindSQS, arch.KindElastiCache)
		if g.EdgeCount() != 0 {
			t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
		}
	})
}

func TestComposeOrderIndependent(t *testing.T) {
	kinds := []arch.Kind{
		arch.KindRoute53, arch.KindCloudFront, arch.KindELB, arch.KindEC2AutoScaling,
		arch.KindRDSMultiAZ, arch.KindElastiCache, arch.KindS3, arch.KindCloudWatch,
	}
	reversed := slices.Clone(kinds)
	slices.Reverse(reversed)

	a := build(t, kinds...)
	b := build(t, reversed...)

	edgeSet := func(g *dag.DAG) []string {
		var out []string
		for _, e := range g.Edges() {
			out = append(out, e.From+"->"+e.To)
		}
		slices.Sort(out)
		return out
	}
	if !slices.Equal(edgeSet(a), edgeSet(b)) {
		t.Errorf("edges differ by order:\n%v\n%v", edgeSet(a), edgeSet(b))
	}
}

func TestComposeAcyclicForEveryAnalysis(t *testing.T) {
	reqs := []arch.Requirement{
		{ProjectType: arch.ProjectWeb, Scale: arch.ScaleLarge, Budget: 20000, Performance: []string{arch.PerfHighAvailability, arch.PerfLowLatency, arch.PerfHighSecurity}, Technologies: []string{arch.TechDynamicContent}},
		{ProjectType: arch.ProjectMobile, Scale: arch.ScaleMedium, Technologies: []string{arch.TechPushNotifications, arch.TechMachineLearning}},
		{Scale: arch.ScaleLarge, Budget: 20000, Technologies: []string{arch.TechMicroservices, arch.TechServerless}, Performance: []string{arch.PerfHighPerformance}},
		{},
	}

	for _, req := range reqs {
		for _, d := range arch.Analyze(req) {
			g, err := Build(d, Options{})
			if err != nil {
				t.Fatalf("Build(%s) error: %v", d.Name, err)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Build(%s).Validate() = %v", d.Name, err)
			}
		}
	}
}

func TestComposeEdgeColor(t *testing.T) {
	d := arch.Descriptor{Name: "x", Components: []arch.Kind{arch.KindEC2, arch.KindRDS}}

	g, _ := Build(d, Options{})
	if e := g.Edges()[0]; e.Color != DefaultEdgeColor {
		t.Errorf("default color = %q, want %q", e.Color, DefaultEdgeColor)
	}

	g, _ = Build(d, Options{EdgeColor: "navy"})
	if e := g.Edges()[0]; e.Color != "navy" {
		t.Errorf("override color = %q, want navy", e.Color)
	}
}

type failingCanvas struct{ err error }

func (c failingCanvas) AddNode(dag.Node) error { return c.err }
func (c failingCanvas) AddEdge(dag.Edge) error { return c.err }

func TestComposeCanvasError(t *testing.T) {
	boom := errors.New("boom")
	err := Compose(arch.Baseline(), failingCanvas{err: boom}, Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Compose() error = %v, want wrapping %v", err, boom)
	}
}

func TestEveryKindHasLabel(t *testing.T) {
	for _, k := range arch.Kinds {
		nt, ok := TypeOf(k)
		if !ok {
			t.Errorf("TypeOf(%q) not found", k)
			continue
		}
		if _, ok := labels[nt]; !ok {
			t.Errorf("no label for node type %q", nt)
		}
	}
	if Label("custom") != "custom" {
		t.Error("Label() should fall back to the type name")
	}
}
