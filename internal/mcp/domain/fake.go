package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kironimmanuel/faker"
)

// FakePersonInput represents the MCP tool input for person fixtures.
type FakePersonInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
}

// FakePersonResult represents the MCP tool output for person fixtures.
type FakePersonResult struct {
	Seed      int64  `json:"seed" jsonschema:"seed used for this fixture"`
	FirstName string `json:"first_name" jsonschema:"given name"`
	LastName  string `json:"last_name" jsonschema:"family name"`
	Name      string `json:"name" jsonschema:"full name"`
	Username  string `json:"username" jsonschema:"login name"`
	Email     string `json:"email" jsonschema:"email address"`
}

// FakeAddressInput represents the MCP tool input for address fixtures.
type FakeAddressInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
}

// FakeAddressResult represents the MCP tool output for address fixtures.
type FakeAddressResult struct {
	Seed          int64   `json:"seed" jsonschema:"seed used for this fixture"`
	StreetAddress string  `json:"street_address" jsonschema:"street number, name, and suffix"`
	City          string  `json:"city" jsonschema:"city name"`
	ZipCode       string  `json:"zip_code" jsonschema:"five digit postal code"`
	Country       string  `json:"country" jsonschema:"country name"`
	Latitude      float64 `json:"latitude" jsonschema:"latitude with six decimal places"`
	Longitude     float64 `json:"longitude" jsonschema:"longitude with six decimal places"`
}

// FakeInternetInput represents the MCP tool input for internet fixtures.
type FakeInternetInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible output"`
}

// FakeInternetResult represents the MCP tool output for internet fixtures.
type FakeInternetResult struct {
	Seed      int64  `json:"seed" jsonschema:"seed used for this fixture"`
	Domain    string `json:"domain" jsonschema:"registrable domain name"`
	URL       string `json:"url" jsonschema:"https url"`
	IPv4      string `json:"ipv4" jsonschema:"dotted quad address"`
	UUID      string `json:"uuid" jsonschema:"version 4 uuid"`
	HexColor  string `json:"hex_color" jsonschema:"css hex color"`
	AuthToken string `json:"auth_token" jsonschema:"signed fixture jwt, not a real credential"`
}

// FakePersonTool defines the MCP tool schema for person fixtures.
func FakePersonTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fake_person",
		Description: "Generates a reproducible person fixture with name and contact fields",
	}
}

// FakeAddressTool defines the MCP tool schema for address fixtures.
func FakeAddressTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fake_address",
		Description: "Generates a reproducible postal address fixture with coordinates",
	}
}

// FakeInternetTool defines the MCP tool schema for internet fixtures.
func FakeInternetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fake_internet",
		Description: "Generates a reproducible network identity fixture",
	}
}

// FakePersonHandler executes a person fixture request.
func FakePersonHandler() mcp.ToolHandlerFor[FakePersonInput, FakePersonResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FakePersonInput) (*mcp.CallToolResult, FakePersonResult, error) {
		seed := resolveSeed(input.Seed)
		f := faker.New(seed)
		first := f.FirstName()
		last := f.LastName()
		return nil, FakePersonResult{
			Seed:      seed,
			FirstName: first,
			LastName:  last,
			Name:      first + " " + last,
			Username:  f.Username(),
			Email:     f.Email(),
		}, nil
	}
}

// FakeAddressHandler executes an address fixture request.
func FakeAddressHandler() mcp.ToolHandlerFor[FakeAddressInput, FakeAddressResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FakeAddressInput) (*mcp.CallToolResult, FakeAddressResult, error) {
		seed := resolveSeed(input.Seed)
		f := faker.New(seed)
		return nil, FakeAddressResult{
			Seed:          seed,
			StreetAddress: f.StreetAddress(),
			City:          f.City(),
			ZipCode:       f.ZipCode(),
			Country:       f.Country(),
			Latitude:      f.Latitude(),
			Longitude:     f.Longitude(),
		}, nil
	}
}

// FakeInternetHandler executes an internet fixture request.
func FakeInternetHandler() mcp.ToolHandlerFor[FakeInternetInput, FakeInternetResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FakeInternetInput) (*mcp.CallToolResult, FakeInternetResult, error) {
		seed := resolveSeed(input.Seed)
		f := faker.New(seed)
		result := FakeInternetResult{
			Seed:     seed,
			Domain:   f.DomainName(),
			URL:      f.URL(),
			IPv4:     f.IPv4(),
			UUID:     f.UUID(),
			HexColor: f.HexColor(),
		}
		token, err := f.AuthToken()
		if err != nil {
			return nil, FakeInternetResult{}, fmt.Errorf("fake internet failed: %w", err)
		}
		result.AuthToken = token
		return nil, result, nil
	}
}
