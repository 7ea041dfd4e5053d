package hattrick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	root, err := decodeDocument([]byte(`<Player>
		<PlayerID> 7 </PlayerID>
		<PlayerSkills><KeeperSkill>3</KeeperSkill></PlayerSkills>
		<Trainer><Contact><Email>t@example.com</Email></Contact></Trainer>
	</Player>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"PlayerID":              "7",
		"KeeperSkill":           "3",
		"Trainer_Contact_Email": "t@example.com",
	}, flatten(root))
}

func TestDecodeDocument_Latin1(t *testing.T) {
	_, err := decodeDocument([]byte(`<?xml version="1.0" encoding="iso-8859-1"?><HattrickData/>`))

	assert.NoError(t, err)
}
