// Package runner repeats the greedy + annealing search several times and
// keeps the best outcome.
//
// Every run gets its own *rand.Rand derived from the base seed and the run
// index (tsp.DeriveRNG), so the Outcome depends only on the seed and the
// options, never on Parallelism or scheduling. The distance matrix is built
// once and shared read-only by all runs.
//
// Failures are isolated per run: a run that ends with an error is recorded
// in its RunReport and excluded from selection. Only when every run fails
// does Run return a *tsp.AggregateRunError.
//
// Runs are scheduled on an errgroup.Group bounded by Parallelism. Progress is
// logged through an injectable logrus.FieldLogger.
package runner
