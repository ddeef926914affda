package roadmap

// milestonesFor derives the delivery checkpoints a project of the given
// length passes through. Longer implementations earn the intermediate
// engineering phases; every project gets kickoff, UAT, deployment and a
// benefits review.
func milestonesFor(implMonths int) []string {
	ms := []string{"Project Kickoff"}

	if implMonths >= 2 {
		ms = append(ms, "Requirements Complete")
	}
	if implMonths >= 3 {
		ms = append(ms, "Design & Architecture Complete")
	}
	if implMonths >= 4 {
		ms = append(ms, "Development Phase Complete")
	}
	if implMonths >= 6 {
		ms = append(ms, "Integration Testing Complete")
	}

	return append(ms,
		"UAT & Validation",
		"Production Deployment",
		"Benefits Realization Review",
	)
}
