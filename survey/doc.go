// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey holds the two operations behind the API.

# Saving

	req, err := survey.DecodeSaveRequest(r.Body) // ErrMalformedRequest on bad JSON
	resp, err := survey.NewResponseWriter(s).Save(ctx, req)

Save makes exactly one Insert call. Missing fields are stored as "".

# Aggregating

	report, err := survey.NewStatsAggregator(s).ComputeStats(ctx)

ComputeStats counts all responses, then groups by profile type and by each
of the five questions. Stores implementing store.Snapshotter (both built-in
stores do) serve all of these from one snapshot, so the breakdowns always
sum to the total. Other stores get no such guarantee: a response saved
mid-call may appear in some counts and not others.

Any failed read fails the whole call with store.ErrStorageUnavailable.
*/
package survey
