package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/clients/compendium"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/testutils"
)

type AttunementLedgerTestSuite struct {
	suite.Suite
	ledger *character.AttunementLedger
	items  *compendium.StaticClient
	ch     *character.Character
}

func (s *AttunementLedgerTestSuite) SetupTest() {
	s.ledger = character.NewAttunementLedger()
	s.items = compendium.NewStatic([]*rulebook.Item{
		testutils.CreateTestItem("ring-a", "Ring A"),
		testutils.CreateTestItem("ring-b", "Ring B"),
		testutils.CreateTestItem("ring-c", "Ring C"),
		testutils.CreateTestItem("ring-d", "Ring D"),
		testutils.CreateTestItem("wizard-staff", "Wizard Staff",
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteClass, Value: "Wizard"}),
		testutils.CreateTestItem("caster-rod", "Caster Rod",
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteSpellcaster}),
		testutils.CreateTestItem("good-talisman", "Good Talisman",
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteAlignment, Value: "Lawful Good"}),
		testutils.CreateTestItem("elf-blade", "Elf Blade",
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteRace, Value: "Elf"}),
		{Key: "mundane-rope", Name: "Mundane Rope", Weight: 10},
	})
	s.ch = testutils.CreateTestCharacter("char-1", "owner-1", "Tester",
		testutils.CreateTestClass("fighter", "Fighter", false))
}

func TestAttunementLedgerSuite(t *testing.T) {
	suite.Run(t, new(AttunementLedgerTestSuite))
}

func (s *AttunementLedgerTestSuite) TestAttune_Success() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.True(s.ledger.IsAttuned("ring-a"))
	s.Equal(2, s.ledger.RemainingSlots())
}

func (s *AttunementLedgerTestSuite) TestAttune_SlotCapHolds() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.True(s.ledger.Attune("ring-b", s.items, s.ch))
	s.True(s.ledger.Attune("ring-c", s.items, s.ch))

	s.False(s.ledger.Attune("ring-d", s.items, s.ch))
	s.Equal(0, s.ledger.RemainingSlots())
	s.Equal([]string{"ring-a", "ring-b", "ring-c"}, s.ledger.AttunedKeys())
}

func (s *AttunementLedgerTestSuite) TestAttune_DuplicateRejected() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.False(s.ledger.Attune("ring-a", s.items, s.ch))
	s.False(s.ledger.Attune(" RING-A ", s.items, s.ch), "identity is canonical-key based")
	s.Equal([]string{"ring-a"}, s.ledger.AttunedKeys())
}

func (s *AttunementLedgerTestSuite) TestAttune_NonAttunableRejected() {
	s.False(s.ledger.Attune("mundane-rope", s.items, s.ch))
	s.Equal(3, s.ledger.RemainingSlots())
}

func (s *AttunementLedgerTestSuite) TestAttune_UnresolvableRejected() {
	s.False(s.ledger.Attune("no-such-item", s.items, s.ch))
	s.Equal(3, s.ledger.RemainingSlots())
}

func (s *AttunementLedgerTestSuite) TestAttune_ClassPrerequisite() {
	s.False(s.ledger.Attune("wizard-staff", s.items, s.ch), "fighter cannot attune")

	wizard := testutils.CreateTestCharacter("char-2", "owner-1", "Caster",
		testutils.CreateTestClass("wizard", "Wizard", true))
	s.True(s.ledger.Attune("wizard-staff", s.items, wizard))
}

func (s *AttunementLedgerTestSuite) TestAttune_SpellcasterPrerequisite() {
	s.False(s.ledger.Attune("caster-rod", s.items, s.ch))

	caster := testutils.CreateTestCharacter("char-2", "owner-1", "Caster",
		testutils.CreateTestClass("bard", "Bard", true))
	s.True(s.ledger.Attune("caster-rod", s.items, caster))
}

func (s *AttunementLedgerTestSuite) TestAttune_AlignmentPrerequisite() {
	s.ch.Alignment = shared.AlignmentChaoticEvil
	s.False(s.ledger.Attune("good-talisman", s.items, s.ch))

	s.ch.Alignment = shared.AlignmentLawfulGood
	s.True(s.ledger.Attune("good-talisman", s.items, s.ch))
}

func (s *AttunementLedgerTestSuite) TestAttune_RacePrerequisite() {
	s.False(s.ledger.Attune("elf-blade", s.items, s.ch), "human cannot attune")

	s.ch.Race = testutils.CreateTestRace("elf", "Elf")
	s.True(s.ledger.Attune("elf-blade", s.items, s.ch))
}

func (s *AttunementLedgerTestSuite) TestAttune_ConjunctionShortCircuits() {
	items := compendium.NewStatic([]*rulebook.Item{
		testutils.CreateTestItem("dual-gated", "Dual Gated",
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteClass, Value: "Wizard"},
			&rulebook.Prerequisite{Type: rulebook.PrerequisiteSpellcaster}),
	})

	// Spellcaster but not a wizard: first failing clause rejects.
	sorcerer := testutils.CreateTestCharacter("char-2", "owner-1", "Sorcerer",
		testutils.CreateTestClass("sorcerer", "Sorcerer", true))
	s.False(s.ledger.Attune("dual-gated", items, sorcerer))

	wizard := testutils.CreateTestCharacter("char-3", "owner-1", "Wizard",
		testutils.CreateTestClass("wizard", "Wizard", true))
	s.True(s.ledger.Attune("dual-gated", items, wizard))
}

func (s *AttunementLedgerTestSuite) TestAttune_UnknownClauseAutoSatisfies() {
	items := compendium.NewStatic([]*rulebook.Item{
		testutils.CreateTestItem("future-item", "Future Item",
			&rulebook.Prerequisite{Type: "patron", Value: "Archfey"}),
	})

	var observed []rulebook.PrerequisiteType
	s.ledger.OnUnknownPrerequisite = func(t rulebook.PrerequisiteType) {
		observed = append(observed, t)
	}

	s.True(s.ledger.Attune("future-item", items, s.ch))
	s.Equal([]rulebook.PrerequisiteType{"patron"}, observed)
}

func (s *AttunementLedgerTestSuite) TestRelease() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.True(s.ledger.Attune("ring-b", s.items, s.ch))

	s.False(s.ledger.Release("ring-c"), "releasing a non-attuned id is a no-op")
	s.Equal(1, s.ledger.RemainingSlots())

	s.True(s.ledger.Release("ring-a"))
	s.False(s.ledger.IsAttuned("ring-a"))
	s.Equal([]string{"ring-b"}, s.ledger.AttunedKeys())
}

func (s *AttunementLedgerTestSuite) TestListAttuned_DropsUnresolved() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.True(s.ledger.Attune("ring-b", s.items, s.ch))

	// Resolve against a source that no longer knows ring-a.
	shrunk := compendium.NewStatic([]*rulebook.Item{
		testutils.CreateTestItem("ring-b", "Ring B"),
	})

	resolved := s.ledger.ListAttuned(shrunk)
	s.Len(resolved, 1)
	s.Equal("ring-b", resolved[0].Key)
}

func (s *AttunementLedgerTestSuite) TestReset() {
	s.True(s.ledger.Attune("ring-a", s.items, s.ch))
	s.ledger.Reset()
	s.Equal(3, s.ledger.RemainingSlots())
	s.Empty(s.ledger.AttunedKeys())
}

func (s *AttunementLedgerTestSuite) TestRestore_CapAppliesInSavedOrder() {
	s.ledger.Restore([]string{"ring-a", "ring-b", "ring-c", "ring-d"}, s.items, s.ch)
	s.Equal([]string{"ring-a", "ring-b", "ring-c"}, s.ledger.AttunedKeys(), "d rejected by cap")
}

func (s *AttunementLedgerTestSuite) TestRestore_SkipsFailuresWithoutStopping() {
	s.ledger.Restore([]string{"wizard-staff", "ring-a", "no-such-item", "ring-b"}, s.items, s.ch)
	s.Equal([]string{"ring-a", "ring-b"}, s.ledger.AttunedKeys())
	s.Equal(1, s.ledger.RemainingSlots())
}

func (s *AttunementLedgerTestSuite) TestRestore_ClearsExistingState() {
	s.True(s.ledger.Attune("ring-d", s.items, s.ch))
	s.ledger.Restore([]string{"ring-a"}, s.items, s.ch)
	s.Equal([]string{"ring-a"}, s.ledger.AttunedKeys())
}
