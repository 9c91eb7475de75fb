package postgres

// TrackedCount reports how many writes the unit of work has tracked in the
// current transaction.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
