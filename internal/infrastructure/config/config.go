package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the service configuration, resolved from defaults and the
// environment (a .env file is loaded by the godotenv autoload import in main).
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	AssignmentsTable   string
	CatalogTable       string
	AcademicYearsTable string
	TermsTable         string
	PaymentsTable      string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	SandboxPayerEmail      string
}

// New builds a viper instance with the service defaults and env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("PORT", "8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("ASSIGNMENTS_TABLE", "assignments")
	v.SetDefault("CATALOG_TABLE", "catalog_items")
	v.SetDefault("ACADEMIC_YEARS_TABLE", "academic_years")
	v.SetDefault("TERMS_TABLE", "terms")
	v.SetDefault("PAYMENTS_TABLE", "payments")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "")
	v.SetDefault("MERCADOPAGO_MOCK", "")
	v.SetDefault("MERCADOPAGO_TEST_PAYER_EMAIL", "")

	v.AutomaticEnv()
	return v
}

// Load reads the configuration from the environment.
func Load() Config {
	return FromViper(New())
}

func FromViper(v *viper.Viper) Config {
	c := Config{
		Port:                   v.GetString("PORT"),
		AWSRegion:              v.GetString("AWS_REGION"),
		AWSAccessKeyID:         v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:     v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:       v.GetString("DYNAMODB_ENDPOINT"),
		AssignmentsTable:       v.GetString("ASSIGNMENTS_TABLE"),
		CatalogTable:           v.GetString("CATALOG_TABLE"),
		AcademicYearsTable:     v.GetString("ACADEMIC_YEARS_TABLE"),
		TermsTable:             v.GetString("TERMS_TABLE"),
		PaymentsTable:          v.GetString("PAYMENTS_TABLE"),
		MercadoPagoAccessToken: strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isMockFlag(v.GetString("PAYMENT_GATEWAY_MOCK")) || isMockFlag(v.GetString("MERCADOPAGO_MOCK")),
		SandboxPayerEmail:      strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
	}
	// Sandbox-safe fallback recommended by Mercado Pago examples.
	if c.SandboxPayerEmail == "" && strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-") {
		c.SandboxPayerEmail = "test_user_br@testuser.com"
	}
	return c
}

func isMockFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
