/*
Package wayfind provides incremental graph search: a family of algorithms
driven one edge-expansion at a time.

# Overview

wayfind implements breadth-first, depth-first, depth-limited and
iterative-deepening depth-first, Dijkstra, A*, and AND-OR search over a
caller-supplied graph. Every stepwise algorithm shares one
suspend-and-resume contract: construct the search, then call Step until it
concludes, inspecting visited state between steps. The same engines run
over synchronous in-memory graphs and over suspension-capable graphs whose
edge enumeration is computed remotely and honours cancellation.

The library is built around:
  - Type-safe generics over node, edge, and cost types
  - A keyed priority queue with in-place priority improvement
  - A pluggable cost algebra for numeric and non-numeric costs
  - OpenTelemetry and Prometheus integration for observability

# Basic Usage

Build a search bound to a graph, a source, and a goal predicate, then
drive it:

	g := simple.New[string]()
	g.Add("a", "b")
	g.Add("b", "c")

	search, err := wayfind.NewBreadthFirst[string, simple.Edge[string]](
	    g, "a", wayfind.GoalNode("c"))
	if err != nil {
	    log.Fatal(err)
	}

	for !search.Concluded() {
	    edge, err := search.Step(ctx)
	    if err != nil {
	        log.Fatal(err)
	    }
	    fmt.Println("traversed", edge)
	}
	if search.Succeeded() {
	    fmt.Println("path:", search.PathToTarget())
	}

Or let Run drive it to conclusion:

	if err := wayfind.Run(ctx, search); err != nil {
	    log.Fatal(err)
	}

Construction eagerly visits the source: a source satisfying the goal
concludes the search Completed with zero steps, so a search is never in an
"undiscovered source" state.

# Costs

Dijkstra and A* accumulate costs through a CostModel. Float64Costs adds a
finiteness check: edges or heuristic estimates evaluating to math.Inf(1)
are impassable and silently skipped. Models without a finiteness concept
(IntCosts, DurationCosts, user-defined structs) work too; under those,
impassable edges cannot be expressed.

	search, err := wayfind.NewAStar[Cell, simple.Edge[Cell], float64](
	    grid, start, wayfind.GoalNode(exit),
	    wayfind.Float64Costs{}, grid.Cost, manhattan)

# Suspension and Cancellation

Graphs backed by remote systems implement ContextGraph: edge enumeration
takes a context and yields (edge, error) pairs. Cancellation is checked at
the start of every expansion and threaded through the enumeration; a
cancelled Step returns a CancellationError and leaves the search
unchanged, so the caller decides whether to resume:

	search, err := wayfind.NewDijkstraContext(ctx, store, src, goal,
	    wayfind.Float64Costs{}, store.Cost)
	_, err = search.Step(ctx)
	var cancelled *wayfind.CancellationError
	if errors.As(err, &cancelled) {
	    // search is still resumable with a fresh context
	}

# Conditional Plans

AND-OR search produces a conditional plan over a graph of alternating
state (OR) and action (AND) nodes, covering every nondeterministic outcome
of each chosen action:

	solver, err := wayfind.NewAndOr[State, simple.Edge[State]](world, start, allClean)
	plan, found, err := solver.Solve(ctx)
	if found {
	    policy := plan.Flatten() // state → edge to follow
	}

# Observability

Searches log through slog, record OpenTelemetry metrics, and can stream
step events to a watch.Hub:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	hub := watch.NewHub(watch.HubConfig{})

	search, err := wayfind.NewBreadthFirst(g, src, goal,
	    wayfind.WithLogger(logger),
	    wayfind.WithWatcher(hub),
	    wayfind.WithSearchID("route-42"))

Metrics instruments: wayfind.step.count, wayfind.step.latency_ms,
wayfind.search.latency_ms, wayfind.frontier.size. A Prometheus recorder is
available in the observability package.

# Error Handling

Exhausting the frontier without a target is not an error: the search
concludes Failed (or CutOff under a depth limit) and Run returns nil.
Errors are reserved for misuse and for faults:

	_, err := search.Step(ctx)
	switch {
	case errors.Is(err, wayfind.ErrConcluded):
	    // programmer error: stepping a concluded search
	case errors.As(err, new(*wayfind.CancellationError)):
	    // cooperative cancellation, search resumable
	case errors.As(err, new(*wayfind.ExpansionError)):
	    // the graph's enumeration failed, search resumable
	}

# Thread Safety

  - A search instance is single-threaded: Step is neither reentrant nor
    safe for concurrent use
  - Distinct searches over one graph may run concurrently provided the
    graph is not mutated during search
  - Visited() returns a copy and is safe to retain

# Subpackages

  - pqueue: keyed priority queue with decrease-key
  - simple: in-memory adjacency graphs for tests and examples
  - sqlgraph: SQLite-backed suspension-capable graph
  - watch: step event streaming for visualization and debugging
  - observability: logging, metrics, and tracing helpers
  - config: YAML/JSON tuning profiles
*/
package wayfind
