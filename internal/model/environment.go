package model

// Environment is the deployment environment name from config.
type Environment string

const EnvironmentProduction Environment = "production"

// IsProduction reports whether e names the production environment.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
