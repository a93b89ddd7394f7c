package engine

// AccountData is the server-declared view of a user's personalization
// state, supplied by the login flow.
type AccountData struct {
	Interests []string       `json:"interests"`
	Activity  map[string]int `json:"activity"`
}

// MergeResult reports the outcome of a login merge.
type MergeResult struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	Interests []string       `json:"interests,omitempty"`
	Activity  map[string]int `json:"activity,omitempty"`
}

// Reconciler merges guest-accumulated local data with account data
// exactly once per login session. Repeat calls within a session are
// no-ops, so the login flow can invoke it without bookkeeping.
type Reconciler struct {
	store *ActivityStore
}

// NewReconciler returns a reconciler over the given store.
func NewReconciler(store *ActivityStore) *Reconciler {
	return &Reconciler{store: store}
}

// MergeAndSync reconciles local and account data. Interests merge by set
// union; activity scores merge additively, so guest browsing always adds
// to the account's tracked engagement and is never capped or overwritten.
// The merged records and the synced flag commit in one transaction: a
// failure leaves the session unsynced and the local data untouched, and
// the next login retries the merge.
func (r *Reconciler) MergeAndSync(account AccountData) (MergeResult, error) {
	if r.store.SessionSynced() {
		return MergeResult{Success: true, Message: "already synced"}, nil
	}

	interests := unionInterests(r.store.Interests(), account.Interests)
	activity := addScores(r.store.Scores(), account.Activity)

	if err := r.store.commitMerge(interests, activity); err != nil {
		return MergeResult{Success: false}, err
	}

	return MergeResult{Success: true, Interests: interests, Activity: activity}, nil
}

// EndSession clears the sync flag on logout so a subsequent login
// re-triggers the merge path.
func (r *Reconciler) EndSession() error {
	return r.store.ClearSessionSynced()
}

// unionInterests returns every label from both sides exactly once, local
// labels first, preserving first-seen order.
func unionInterests(local, account []string) []string {
	seen := make(map[string]bool, len(local)+len(account))
	union := make([]string, 0, len(local)+len(account))
	for _, labels := range [][]string{local, account} {
		for _, label := range labels {
			if seen[label] {
				continue
			}
			seen[label] = true
			union = append(union, label)
		}
	}
	return union
}

// addScores merges two activity maps additively: every category from
// either side appears with the sum of both scores.
func addScores(local, account map[string]int) map[string]int {
	merged := make(map[string]int, len(local)+len(account))
	for k, v := range local {
		merged[k] += v
	}
	for k, v := range account {
		merged[k] += v
	}
	return merged
}
