package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encoding then parsing must reproduce the original structure exactly.
func TestTeamsRoundTrip(t *testing.T) {
	teams := TeamAssignment{
		"Jets":   {uuid.New(), uuid.New()},
		"Sharks": {uuid.New(), uuid.New()},
	}

	parsed, err := ParseTeams(EncodeTeams(teams))
	require.NoError(t, err)
	assert.Equal(t, teams, parsed)
}

func TestParseTeamsEmpty(t *testing.T) {
	parsed, err := ParseTeams("")
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestParseTeamsMalformed(t *testing.T) {
	for _, s := range []string{
		"no-colon-here",
		":missing-name",
		"Jets:not-a-uuid",
	} {
		if _, err := ParseTeams(s); err == nil {
			t.Errorf("ParseTeams(%q) accepted malformed input", s)
		}
	}
}

func TestPressesRoundTrip(t *testing.T) {
	presses := []Press{
		{Match: MatchFront, StartingHole: 5, Team: "Jets"},
		{Match: MatchBack, StartingHole: 14, Team: "Sharks"},
		{Match: MatchBack, StartingHole: 16, Team: "Jets"},
	}

	encoded := EncodePresses(presses)
	assert.Equal(t, "front:5:Jets|back:14:Sharks|back:16:Jets", encoded)

	parsed, err := ParsePresses(encoded)
	require.NoError(t, err)
	assert.Equal(t, presses, parsed)
}

func TestParsePressesEmpty(t *testing.T) {
	parsed, err := ParsePresses("")
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestParsePressesMalformed(t *testing.T) {
	for _, s := range []string{
		"front:5",
		"front:five:Jets",
	} {
		if _, err := ParsePresses(s); err == nil {
			t.Errorf("ParsePresses(%q) accepted malformed input", s)
		}
	}
}

func TestTrackingRoundTrip(t *testing.T) {
	tracking := map[uuid.UUID]bool{
		uuid.New(): true,
		uuid.New(): true,
	}

	parsed, err := ParseTracking(EncodeTracking(tracking))
	require.NoError(t, err)
	assert.Equal(t, tracking, parsed)
}

// Players with the opt-in flag off are not part of the encoded set.
func TestEncodeTrackingSkipsOptedOut(t *testing.T) {
	in, out := uuid.New(), uuid.New()
	tracking := map[uuid.UUID]bool{in: true, out: false}

	parsed, err := ParseTracking(EncodeTracking(tracking))
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{in: true}, parsed)
}
