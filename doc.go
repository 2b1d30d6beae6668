// Package simfabric compiles declarative platform descriptions into
// simulation topologies.
//
// # Overview
//
// A platform document (JSON or YAML) enumerates facilities, clusters,
// storage systems, links, routes and filesystems. Simfabric validates
// the document, expands compact cluster specifications into fully
// wired star topologies and hands the resulting object graph to a
// discrete-event simulation engine.
//
// # Architecture
//
//	┌──────────────────┐
//	│  Platform doc    │
//	│  (JSON / YAML)   │
//	└────────┬─────────┘
//	         │ parse + validate
//	┌────────▼─────────┐       ┌──────────────────┐
//	│  Compiler        │──────►│  Topology graph  │
//	│  (builders +     │       │  (engine-owned)  │
//	│   registries)    │       └────────┬─────────┘
//	└──────────────────┘                │
//	                     ┌──────────────┼──────────────┐
//	              ┌──────▼─────┐  ┌─────▼─────┐  ┌─────▼──────┐
//	              │  summary   │  │   diff    │  │ inspection │
//	              │  printer   │  │ (finger-  │  │ API (Echo) │
//	              │            │  │  prints)  │  │            │
//	              └────────────┘  └───────────┘  └────────────┘
//
// # Core Packages
//
//   - internal/platform: document resolution and parsing
//   - internal/validation: structural and cross-reference validation
//   - internal/compiler: the compile pass and its builders
//   - internal/topology: the entity graph (zones, hosts, links, ...)
//   - internal/engine: the simulation-engine facade owning the graph
package simfabric
