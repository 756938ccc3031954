package model

// Environment names the deployment environment the process runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name designates production.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
