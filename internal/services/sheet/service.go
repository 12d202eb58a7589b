package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheet -source=service.go

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/clients/compendium"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/equipment"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/repositories/characters"
)

// Repository is an alias for the character repository interface.
type Repository = characters.Repository

// Service derives character sheets and orchestrates attunement changes.
// Attunement rejections are reported in the output structs, not as errors;
// errors mean a collaborator (repository, compendium) failed.
type Service interface {
	// GetSheet derives the full sheet for one character.
	GetSheet(ctx context.Context, characterID string) (*Sheet, error)

	// GetSheets derives sheets for all of an owner's characters. Each
	// character derives independently; one character's sheet never shares
	// state with another's.
	GetSheets(ctx context.Context, ownerID string) ([]*Sheet, error)

	// Attune attempts to attune an item and persists the ledger on success.
	Attune(ctx context.Context, input *AttuneInput) (*AttuneOutput, error)

	// Release removes an attunement and persists the ledger on success.
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)

	// RestoreAttunements replays a saved key list through validated
	// attunement and persists the result.
	RestoreAttunements(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)
}

type AttuneInput struct {
	CharacterID string
	ItemKey     string
}

type AttuneOutput struct {
	Attuned        bool
	RemainingSlots int
}

type ReleaseInput struct {
	CharacterID string
	ItemKey     string
}

type ReleaseOutput struct {
	Released       bool
	RemainingSlots int
}

type RestoreInput struct {
	CharacterID string
	ItemKeys    []string
}

type RestoreOutput struct {
	AttunedKeys    []string
	RemainingSlots int
}

type service struct {
	compendium compendium.Client
	repository Repository
	currency   shared.CurrencyTable
}

// ServiceConfig holds configuration for the service.
type ServiceConfig struct {
	Compendium compendium.Client    // Required
	Repository Repository           // Required
	Currency   shared.CurrencyTable // Optional, defaults to standard coinage
}

// NewService creates a new sheet service.
func NewService(cfg *ServiceConfig) Service {
	if cfg.Compendium == nil {
		panic("compendium client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	currency := cfg.Currency
	if currency == nil {
		currency = shared.DefaultCurrencyTable()
	}

	return &service{
		compendium: cfg.Compendium,
		repository: cfg.Repository,
		currency:   currency,
	}
}

// load fetches a character and rebuilds its ledger from the saved key list.
// Restore re-validates every entry, so stale or now-illegal attunements fall
// away deterministically.
func (s *service) load(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	ch, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load character '%s'", characterID)
	}

	ch.Ledger().Restore(ch.SavedAttunements, s.compendium, ch)
	return ch, nil
}

// persist writes the ledger back through the saved key list and updates the
// character.
func (s *service) persist(ctx context.Context, ch *character.Character) error {
	ch.SavedAttunements = ch.Ledger().AttunedKeys()
	if err := s.repository.Update(ctx, ch); err != nil {
		return apperr.Wrapf(err, "failed to persist character '%s'", ch.ID)
	}
	return nil
}

func (s *service) GetSheet(ctx context.Context, characterID string) (*Sheet, error) {
	ch, err := s.load(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.derive(ch), nil
}

func (s *service) GetSheets(ctx context.Context, ownerID string) ([]*Sheet, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	chars, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list characters for owner '%s'", ownerID)
	}

	sheets := make([]*Sheet, len(chars))
	g, _ := errgroup.WithContext(ctx)
	for i, ch := range chars {
		i, ch := i, ch
		g.Go(func() error {
			ch.Ledger().Restore(ch.SavedAttunements, s.compendium, ch)
			sheets[i] = s.derive(ch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func (s *service) Attune(ctx context.Context, input *AttuneInput) (*AttuneOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}

	ch, err := s.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ledger := ch.Ledger()
	attuned := ledger.Attune(input.ItemKey, s.compendium, ch)
	if attuned {
		if err := s.persist(ctx, ch); err != nil {
			return nil, err
		}
	}

	return &AttuneOutput{
		Attuned:        attuned,
		RemainingSlots: ledger.RemainingSlots(),
	}, nil
}

func (s *service) Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}

	ch, err := s.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ledger := ch.Ledger()
	released := ledger.Release(input.ItemKey)
	if released {
		if err := s.persist(ctx, ch); err != nil {
			return nil, err
		}
	}

	return &ReleaseOutput{
		Released:       released,
		RemainingSlots: ledger.RemainingSlots(),
	}, nil
}

func (s *service) RestoreAttunements(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	ch, err := s.repository.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load character '%s'", input.CharacterID)
	}

	ledger := ch.Ledger()
	ledger.Restore(input.ItemKeys, s.compendium, ch)
	if err := s.persist(ctx, ch); err != nil {
		return nil, err
	}

	return &RestoreOutput{
		AttunedKeys:    ledger.AttunedKeys(),
		RemainingSlots: ledger.RemainingSlots(),
	}, nil
}

// derive recomputes the full sheet from raw state. Pure except for the
// compendium reads that resolve attuned items.
func (s *service) derive(ch *character.Character) *Sheet {
	profBonus := ch.ProficiencyBonus()
	profs := ch.AllProficiencies()
	saves := ch.SavingThrowProficiencies()

	out := &Sheet{
		CharacterID:      ch.ID,
		Name:             ch.Name,
		Level:            ch.Level,
		ProficiencyBonus: profBonus,
		Proficiencies:    profs,
	}

	for _, skill := range rulebook.Skills {
		proficient := hasSkillProficiency(profs, skill)
		expertise := ch.HasExpertise(skill.Key) || ch.HasExpertise(skill.Name)
		mod := character.SkillModifier(ch.AbilityModifier(skill.Attribute), profBonus, proficient, expertise)
		out.Skills = append(out.Skills, &SkillEntry{
			Key:        skill.Key,
			Name:       skill.Name,
			Attribute:  skill.Attribute,
			Modifier:   mod,
			Display:    character.FormatSigned(mod),
			Proficient: proficient,
			Expertise:  expertise,
		})
	}

	for _, attr := range shared.Attributes {
		proficient := hasSaveProficiency(saves, attr)
		mod := character.SavingThrowModifier(ch.AbilityModifier(attr), profBonus, proficient)
		out.SavingThrows = append(out.SavingThrows, &SaveEntry{
			Attribute:  attr,
			Modifier:   mod,
			Display:    character.FormatSigned(mod),
			Proficient: proficient,
		})
	}

	out.PassivePerception = passiveFor(out.Skills, ch, character.PassivePerception)
	out.PassiveInvestigation = passiveFor(out.Skills, ch, character.PassiveInvestigation)
	out.PassiveInsight = passiveFor(out.Skills, ch, character.PassiveInsight)

	for _, pack := range ch.Packs {
		if pack == nil {
			continue
		}
		weight := pack.TotalWeight()
		value := equipment.TotalValue(pack.Contents, s.currency, func(unit string) {
			log.Printf("unknown coin code %q in pack %q, using 1:1 rate", unit, pack.Key)
		})
		out.Packs = append(out.Packs, &PackSummary{
			Key:    pack.Key,
			Name:   pack.Name,
			Weight: weight,
			Value:  value,
		})
		out.TotalWeight += weight
		out.TotalValue += value
	}

	summary := &AttunementSummary{Remaining: ch.Ledger().RemainingSlots()}
	for _, item := range ch.Ledger().ListAttuned(s.compendium) {
		summary.Items = append(summary.Items, &AttunedItem{Key: item.Key, Name: item.Name})
	}
	out.Attunement = summary

	return out
}

// passiveFor reuses the already-derived skill entry so the passive score and
// the skill line can never disagree.
func passiveFor(skills []*SkillEntry, ch *character.Character, kind character.PassiveKind) int {
	for _, entry := range skills {
		if entry.Key == string(kind) {
			return ch.Passive(kind, entry.Proficient, entry.Expertise)
		}
	}
	return 10 + ch.AbilityModifier(kind.Attribute())
}

// hasSkillProficiency accepts the spellings proficiency sources actually
// use: the display name, the bare key, and the "skill-" prefixed key.
func hasSkillProficiency(profs []string, skill *rulebook.Skill) bool {
	return character.HasProficiency(profs, skill.Name) ||
		character.HasProficiency(profs, skill.Key) ||
		character.HasProficiency(profs, "skill-"+skill.Key)
}

// hasSaveProficiency accepts "Str", "Strength", and "saving-throw-str".
func hasSaveProficiency(saves []string, attr shared.Attribute) bool {
	return character.HasProficiency(saves, string(attr)) ||
		character.HasProficiency(saves, attr.FullName()) ||
		character.HasProficiency(saves, "saving-throw-"+strings.ToLower(string(attr)))
}
