package bundle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a bundle or package version. The zero value is version 0.0.0.
//
// Syntax follows semver, with one relaxation carried over from the legacy
// manifest format: a fourth dotted component is accepted as a qualifier and
// treated as a pre-release tag, so "1.2.3.beta" parses as "1.2.3-beta".
// Ordering is semver ordering.
type Version struct {
	v *semver.Version
}

var zeroVersion = semver.New(0, 0, 0, "", "")

// ParseVersion parses a version string. The empty string is version 0.0.0.
// Failures wrap ErrMalformedVersion.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, nil
	}
	if canon, ok := foldQualifier(s); ok {
		s = canon
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	return Version{v: v}, nil
}

// MustVersion is ParseVersion for statically known inputs. It panics on
// parse failure.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// foldQualifier rewrites a legacy four-component version
// "major.minor.micro.qualifier" into semver pre-release form. Underscores
// in the qualifier become hyphens, which semver accepts.
func foldQualifier(s string) (string, bool) {
	parts := strings.SplitN(s, ".", 4)
	if len(parts) != 4 {
		return "", false
	}
	for _, p := range parts[:3] {
		if _, err := strconv.ParseUint(p, 10, 64); err != nil {
			return "", false
		}
	}
	qual := strings.ReplaceAll(parts[3], "_", "-")
	return parts[0] + "." + parts[1] + "." + parts[2] + "-" + qual, true
}

func (v Version) sv() *semver.Version {
	if v.v == nil {
		return zeroVersion
	}
	return v.v
}

// String returns the canonical form of the version.
func (v Version) String() string { return v.sv().String() }

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater
// than o.
func (v Version) Compare(o Version) int { return v.sv().Compare(o.sv()) }

// VersionRange is a half-open or closed version interval. High is nil for
// an unbounded range.
type VersionRange struct {
	Low           Version
	High          *Version
	LowInclusive  bool
	HighInclusive bool
}

// AnyVersion matches every version.
var AnyVersion = VersionRange{LowInclusive: true}

// ParseVersionRange parses either an interval, "[low,high)" with '[' or
// '(' and ']' or ')' delimiters, or a bare version, which denotes the
// unbounded range [version, inf). Failures wrap ErrMalformedVersion.
func ParseVersionRange(s string) (VersionRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnyVersion, nil
	}

	if s[0] != '[' && s[0] != '(' {
		low, err := ParseVersion(s)
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{Low: low, LowInclusive: true}, nil
	}

	last := s[len(s)-1]
	if (last != ']' && last != ')') || !strings.Contains(s, ",") {
		return VersionRange{}, fmt.Errorf("%w: invalid range %q", ErrMalformedVersion, s)
	}
	lowStr, highStr, _ := strings.Cut(s[1:len(s)-1], ",")
	low, err := ParseVersion(lowStr)
	if err != nil {
		return VersionRange{}, err
	}
	high, err := ParseVersion(highStr)
	if err != nil {
		return VersionRange{}, err
	}
	return VersionRange{
		Low:           low,
		High:          &high,
		LowInclusive:  s[0] == '[',
		HighInclusive: last == ']',
	}, nil
}

// String returns the range in interval syntax, or the bare low version for
// an unbounded range.
func (r VersionRange) String() string {
	if r.High == nil {
		return r.Low.String()
	}
	var b strings.Builder
	if r.LowInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.Low.String())
	b.WriteByte(',')
	b.WriteString(r.High.String())
	if r.HighInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// Includes reports whether v falls inside the range.
func (r VersionRange) Includes(v Version) bool {
	if c := v.Compare(r.Low); c < 0 || (c == 0 && !r.LowInclusive) {
		return false
	}
	if r.High == nil {
		return true
	}
	if c := v.Compare(*r.High); c > 0 || (c == 0 && !r.HighInclusive) {
		return false
	}
	return true
}
