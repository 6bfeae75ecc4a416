package background

// SolveQuestEvent is a background job to advance the solver's daily
// quests after a successful match
func (m *BackgroundManager) SolveQuestEvent(lineID string) error {
	return m.store.RecordSolveProgress(lineID)
}
