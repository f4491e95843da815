// Package anneal implements the simulated-annealing search over a Euclidean
// TSP instance, starting from a given tour (usually the greedy one).
//
// One Engine owns one search: its State, its *rand.Rand and its histories.
// Engines share nothing mutable, so many of them can run in parallel over the
// same read-only *tsp.DistanceMatrix.
//
// Per iteration the engine:
//
//  1. copies the current tour and reverses a random segment of length
//     segLen ∈ [2, N-1] starting at segStart ∈ [0, N-segLen];
//  2. evaluates the candidate's cyclic length;
//  3. accepts it if strictly shorter (and records a new best if it beats the
//     best so far), otherwise accepts it with probability exp(-|Δ|/T);
//  4. cools the live temperature: T ← T·α;
//  5. appends the best fitness and best tour to the histories.
//
// T in step 3 is selected by Options.Acceptance:
//
//   - AcceptFixedInitial (default): the configured initial temperature, which
//     never changes while the search cools.
//   - AcceptLiveTemperature: the current, cooled temperature.
//
// The search stops ("converges") as soon as the live temperature drops below
// Options.StopTemp or the iteration counter reaches Options.MaxIterations.
// There is no fitness-based early stop.
//
// Complexity: O(N) time per iteration, O(N) memory plus O(N·iterations) when
// tour history is kept.
package anneal
