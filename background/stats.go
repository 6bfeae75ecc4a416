package background

// AddRequestStat is a background job to credit a user for posting a help
// request
func (m *BackgroundManager) AddRequestStat(lineID string) error {
	return m.store.IncrementUserStats(lineID, 1, 0)
}

// AddSolveStat is a background job to credit a solver for taking a case
func (m *BackgroundManager) AddSolveStat(lineID string) error {
	return m.store.IncrementUserStats(lineID, 0, 1)
}
