package characters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/clients/compendium"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo *redisRepo
	mock redismock.ClientMock
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = &redisRepo{
		client:        client,
		uuidGenerator: &staticGenerator{id: "generated-id"},
	}
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

type staticGenerator struct {
	id string
}

func (g *staticGenerator) New() string {
	return g.id
}

func (s *RedisRepositoryTestSuite) createTestCharacter(id string) *character.Character {
	ch := testutils.CreateTestCharacter(id, "owner-1", "Tester",
		testutils.CreateTestClass("fighter", "Fighter", false))
	ch.SavedAttunements = []string{"ring-a", "ring-b"}
	return ch
}

func (s *RedisRepositoryTestSuite) marshaled(ch *character.Character) []byte {
	raw, err := json.Marshal(characterToData(ch))
	s.Require().NoError(err)
	return raw
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	ch := s.createTestCharacter("char-1")
	raw := s.marshaled(ch)

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:char-1", raw, 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:characters", "char-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(s.ctx, ch))
}

func (s *RedisRepositoryTestSuite) TestCreate_AssignsGeneratedID() {
	ch := s.createTestCharacter("")

	s.mock.ExpectExists("character:generated-id").SetVal(0)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:generated-id", s.marshaledWithID(ch, "generated-id"), 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:characters", "generated-id").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(s.ctx, ch))
	s.Equal("generated-id", ch.ID)
}

func (s *RedisRepositoryTestSuite) marshaledWithID(ch *character.Character, id string) []byte {
	data := characterToData(ch)
	data.ID = id
	raw, err := json.Marshal(data)
	s.Require().NoError(err)
	return raw
}

func (s *RedisRepositoryTestSuite) TestCreate_AlreadyExists() {
	ch := s.createTestCharacter("char-1")

	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(s.ctx, ch)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet() {
	ch := s.createTestCharacter("char-1")
	raw := s.marshaled(ch)

	s.mock.ExpectGet("character:char-1").SetVal(string(raw))

	loaded, err := s.repo.Get(s.ctx, "char-1")
	s.NoError(err)
	s.Equal("Tester", loaded.Name)
	s.Equal([]string{"ring-a", "ring-b"}, loaded.SavedAttunements, "attunement round-trips as an ordered key list")
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByOwner_SkipsStaleIndexEntries() {
	ch := s.createTestCharacter("char-1")
	raw := s.marshaled(ch)

	s.mock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{"char-1", "stale-id"})
	s.mock.ExpectGet("character:char-1").SetVal(string(raw))
	s.mock.ExpectGet("character:stale-id").RedisNil()

	result, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.NoError(err)
	s.Len(result, 1)
	s.Equal("char-1", result[0].ID)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	ch := s.createTestCharacter("char-1")
	raw := s.marshaled(ch)

	s.mock.ExpectExists("character:char-1").SetVal(1)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("character:char-1", raw, 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:characters", "char-1").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Update(s.ctx, ch))
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	ch := s.createTestCharacter("char-1")

	s.mock.ExpectExists("character:char-1").SetVal(0)

	s.True(apperr.IsNotFound(s.repo.Update(s.ctx, ch)))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	ch := s.createTestCharacter("char-1")
	raw := s.marshaled(ch)

	s.mock.ExpectGet("character:char-1").SetVal(string(raw))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(s.ctx, "char-1"))
}

func (s *RedisRepositoryTestSuite) TestSerializesLiveLedger() {
	ch := s.createTestCharacter("char-1")
	items := compendium.NewStatic([]*rulebook.Item{
		testutils.CreateTestItem("ring-c", "Ring C"),
	})
	ch.Ledger().Attune("ring-c", items, ch)

	// The live ledger, once present, wins over the saved list.
	data := characterToData(ch)
	s.Equal([]string{"ring-c"}, data.Attuned)
}
