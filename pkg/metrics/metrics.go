// Package metrics collects Prometheus metrics of the storage node.
package metrics

const namespace = "bitym_node"
