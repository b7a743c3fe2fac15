package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	Club() ClubRepository
	Team() TeamRepository
	Match() MatchRepository
	Action() ActionRepository
	Membership() MembershipRepository

	// Close releases backend resources
	Close() error
}
