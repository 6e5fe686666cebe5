// Package combined provides benchmarks that compose ring queues with the
// pieces they are used alongside: the metrics decorator, the external lock
// a shared queue needs, and a lock-free MPSC ring for comparison.
//
// These benchmarks are more representative of real-world performance
// than the isolated ring benchmarks, as they capture the cumulative cost
// of instrumentation and locking around the O(1) core.
package combined
