package faker

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/net/idna"

	"github.com/kironimmanuel/faker/random"
)

// authTokenKey signs fake bearer tokens. It is deliberately public
// knowledge; tokens produced here must never guard anything real.
var authTokenKey = []byte("faker-fixture-signing-key")

// Username returns a login name like "clara_whitfield42".
func (f *Faker) Username() string {
	first := strings.ToLower(f.pick(firstNames))
	last := strings.ToLower(f.pick(lastNames))
	n, _ := f.gen.Int(1, 99)
	return fmt.Sprintf("%s%s%s%d", first, f.pick(usernameSeparators), last, n)
}

// DomainName returns a registrable domain like "nimbus.dev". Words with
// non-ASCII letters are converted to their punycode form, so "bücher"
// becomes "xn--bcher-kva".
func (f *Faker) DomainName() string {
	label := f.pick(domainWords)
	if ascii, err := idna.Lookup.ToASCII(label); err == nil {
		label = ascii
	}
	return fmt.Sprintf("%s.%s", label, f.pick(topLevelDomains))
}

// Email returns an address like "mateo.grimaldi7@atlas.org".
func (f *Faker) Email() string {
	return fmt.Sprintf("%s@%s", f.Username(), f.DomainName())
}

// URL returns an HTTPS URL like "https://zenith.io/harbor".
func (f *Faker) URL() string {
	return fmt.Sprintf("https://%s/%s", f.DomainName(), f.pick(loremWords))
}

// IPv4 returns a dotted quad like "203.114.9.61".
func (f *Faker) IPv4() string {
	octets := make([]string, 4)
	for i := range octets {
		n, _ := f.gen.Int(0, 255)
		octets[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(octets, ".")
}

// HexColor returns a CSS color like "#3fa2c9".
func (f *Faker) HexColor() string {
	digits, _ := f.gen.Hex(random.HexRequest{Length: 6, Banned: []rune("ABCDEF")})
	return "#" + digits
}

// Password returns a fake password like "QhzKuvTp8214". Generated
// passwords must never be used as real credentials.
func (f *Faker) Password() string {
	letters, _ := f.gen.Alpha(random.AlphaRequest{Length: 8})
	digits, _ := f.gen.Numeric(random.NumericRequest{Length: 4, AllowLeadingZeros: true})
	return letters + digits
}

// UUID returns a version 4 UUID drawn from the shared generator, so a
// seeded Faker always yields the same sequence of UUIDs.
func (f *Faker) UUID() string {
	// The generator's Read never fails, so neither can this.
	return uuid.Must(uuid.NewRandomFromReader(f.gen)).String()
}

// AuthToken returns a signed JWT for a fake subject. The claims omit
// issued-at on purpose; a timestamp would break seed reproducibility.
func (f *Faker) AuthToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": f.Username(),
		"jti": f.UUID(),
		"iss": "faker",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(authTokenKey)
	if err != nil {
		return "", fmt.Errorf("sign auth token: %w", err)
	}
	return signed, nil
}
