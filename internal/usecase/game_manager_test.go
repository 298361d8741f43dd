package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tilous-backend/internal/apperror"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
	"github.com/rocketscienceinc/tilous-backend/internal/repository"
	"github.com/rocketscienceinc/tilous-backend/internal/tilous"
	mockedUseCase "github.com/rocketscienceinc/tilous-backend/mocks/usecase"
)

const serverPassword = "tilous"

var errRedisDown = errors.New("redis down")

type managerDeps struct {
	playerRepo  *mockedUseCase.MockplayerRepo
	gameRepo    *mockedUseCase.MockgameRepo
	resultRepo  *mockedUseCase.MockresultRepo
	broadcaster *mockedUseCase.Mockbroadcaster
}

func newTestManager(t *testing.T, boardSize int) (*GameManager, *managerDeps) {
	t.Helper()

	deps := &managerDeps{
		playerRepo:  mockedUseCase.NewMockplayerRepo(t),
		gameRepo:    mockedUseCase.NewMockgameRepo(t),
		resultRepo:  mockedUseCase.NewMockresultRepo(t),
		broadcaster: mockedUseCase.NewMockbroadcaster(t),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	settings := Settings{ServerPassword: serverPassword, BoardSize: boardSize}

	manager := NewGameManager(logger, settings, deps.playerRepo, deps.gameRepo, deps.resultRepo, deps.broadcaster)
	// seats follow the login order
	manager.shuffle = func(int, func(i, j int)) {}
	manager.now = func() time.Time { return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC) }

	return manager, deps
}

func seated(id string, seat entity.PlayerID) *entity.Player {
	return &entity.Player{ID: id, Password: id + "-pwd", Seat: &seat}
}

// startWith - puts a running game into the manager without going through the lobby.
func startWith(manager *GameManager, engine *tilous.Engine) {
	manager.engine = engine
	manager.seats = map[entity.PlayerID]string{
		entity.Player1: "alice",
		entity.Player2: "bob",
		entity.Player3: "carol",
		entity.Player4: "dave",
	}
}

// duelBeforeWin - a 2x2 game where only players 1 and 2 are left and player 1 wins by capturing (0,1).
func duelBeforeWin(t *testing.T) *tilous.Engine {
	t.Helper()

	engine, err := tilous.Restore(&entity.Snapshot{
		Size: 2,
		Cells: [][]entity.Owner{
			{entity.OwnedBy(entity.Player1), entity.OwnedBy(entity.Player2)},
			{entity.NoOwner, entity.NoOwner},
		},
		Resources: map[entity.PlayerID]int{entity.Player1: 1, entity.Player2: 1, entity.Player3: 0, entity.Player4: 0},
		States: map[entity.PlayerID]entity.PlayerState{
			entity.Player1: entity.StatePlaying,
			entity.Player2: entity.StatePlaying,
			entity.Player3: entity.StateLost,
			entity.Player4: entity.StateLost,
		},
		CurrentPlayer: entity.Player1,
	})
	require.NoError(t, err)

	return engine
}

func (that *managerDeps) expectPublish(times int) {
	that.gameRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Snapshot")).
		Return(nil).
		Times(times)
	that.broadcaster.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*entity.Snapshot")).
		Return(nil).
		Times(times)
}

func TestGameManager_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects a wrong server password", func(t *testing.T) {
		// Given: a manager with an empty lobby
		manager, _ := newTestManager(t, 15)

		// When: a player logs in with a wrong server password
		player, err := manager.Login(ctx, "wrong", "alice")

		// Then: the login is rejected without touching the storage
		require.ErrorIs(t, err, apperror.ErrInvalidServerPassword)
		assert.Nil(t, player)
	})

	t.Run("Registers a player with a random password", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().List(mock.Anything).Return([]*entity.Player{}, nil).Once()
		deps.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(player *entity.Player) bool {
				return player.ID == "alice" && player.Password != "" && !player.IsSeated()
			})).
			Return(nil).
			Once()

		player, err := manager.Login(ctx, serverPassword, "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", player.ID)
		assert.Len(t, player.Password, 32)
		assert.False(t, player.IsSeated())
	})

	t.Run("Rejects a taken id", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().List(mock.Anything).Return([]*entity.Player{{ID: "alice"}}, nil).Once()

		_, err := manager.Login(ctx, serverPassword, "alice")

		require.ErrorIs(t, err, apperror.ErrPlayerAlreadyExists)
	})

	t.Run("Rejects an empty id", func(t *testing.T) {
		manager, _ := newTestManager(t, 15)

		_, err := manager.Login(ctx, serverPassword, "")

		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().List(mock.Anything).Return(nil, errRedisDown).Once()

		_, err := manager.Login(ctx, serverPassword, "alice")

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("Fourth player starts the game", func(t *testing.T) {
		// Given: three players waiting in the lobby
		manager, deps := newTestManager(t, 7)

		waiting := []*entity.Player{{ID: "alice"}, {ID: "bob"}, {ID: "carol"}}
		deps.playerRepo.EXPECT().List(mock.Anything).Return(waiting, nil).Once()
		deps.playerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Times(5)
		deps.expectPublish(1)

		// When: the fourth player logs in
		player, err := manager.Login(ctx, serverPassword, "dave")

		// Then: every player gets a seat and the first state is published
		require.NoError(t, err)
		require.True(t, player.IsSeated())
		assert.Equal(t, entity.Player4, *player.Seat)
		assert.Equal(t, entity.Player1, *waiting[0].Seat)
		assert.Equal(t, entity.Player3, *waiting[2].Seat)

		snapshot, err := manager.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, snapshot.Size)
		assert.Equal(t, entity.Player1, snapshot.CurrentPlayer)

		// When: somebody else tries to join
		_, err = manager.Login(ctx, serverPassword, "eve")

		// Then: the lobby is closed
		require.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
	})
	t.Run("Failed start frees the lobby", func(t *testing.T) {
		// Given: three players waiting and a storage that fails while seating them
		manager, deps := newTestManager(t, 7)

		waiting := []*entity.Player{{ID: "alice"}, {ID: "bob"}, {ID: "carol"}}
		deps.playerRepo.EXPECT().List(mock.Anything).Return(waiting, nil).Once()

		isDave := func(player *entity.Player) bool { return player.ID == "dave" && !player.IsSeated() }
		isSeated := func(player *entity.Player) bool { return player.IsSeated() }
		isUnseated := func(player *entity.Player) bool { return player.ID != "dave" && !player.IsSeated() }

		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.MatchedBy(isDave)).Return(nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.MatchedBy(isSeated)).Return(nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.MatchedBy(isSeated)).Return(errRedisDown).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.MatchedBy(isUnseated)).Return(nil).Times(3)
		deps.playerRepo.EXPECT().DeleteByID(mock.Anything, "dave").Return(nil).Once()

		// When: the fourth player logs in
		player, err := manager.Login(ctx, serverPassword, "dave")

		// Then: the login fails, nobody keeps a seat and the new player is gone
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, player)
		assert.Nil(t, manager.engine)
		for _, waitingPlayer := range waiting {
			assert.False(t, waitingPlayer.IsSeated(), waitingPlayer.ID)
		}

		_, err = manager.State(ctx)
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

		// When: the fourth player tries again with the storage back
		deps.playerRepo.EXPECT().List(mock.Anything).Return(waiting, nil).Once()
		deps.playerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil).Times(5)
		deps.expectPublish(1)

		player, err = manager.Login(ctx, serverPassword, "dave")

		// Then: the game starts
		require.NoError(t, err)
		assert.Equal(t, entity.Player4, *player.Seat)

		_, err = manager.State(ctx)
		require.NoError(t, err)
	})
}

func TestGameManager_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Leaves the lobby", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(&entity.Player{ID: "alice", Password: "pwd"}, nil).Once()
		deps.playerRepo.EXPECT().DeleteByID(mock.Anything, "alice").Return(nil).Once()

		require.NoError(t, manager.Logout(ctx, "alice", "pwd"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(&entity.Player{ID: "alice", Password: "pwd"}, nil).Once()

		require.ErrorIs(t, manager.Logout(ctx, "alice", "guess"), apperror.ErrInvalidCredentials)
	})

	t.Run("Unknown player", func(t *testing.T) {
		manager, deps := newTestManager(t, 15)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "nobody").Return(nil, repository.ErrPlayerNotFound).Once()

		require.ErrorIs(t, manager.Logout(ctx, "nobody", "pwd"), apperror.ErrInvalidCredentials)
	})

	t.Run("Not after the start", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)
		engine, err := tilous.New(5)
		require.NoError(t, err)
		startWith(manager, engine)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Once()

		require.ErrorIs(t, manager.Logout(ctx, "alice", "alice-pwd"), apperror.ErrGameAlreadyStarted)
	})
}

func TestGameManager_PlaceCell(t *testing.T) {
	ctx := context.Background()

	t.Run("Game is not started", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(&entity.Player{ID: "alice", Password: "pwd"}, nil).Once()

		_, err := manager.PlaceCell(ctx, "alice", "pwd", 0, 1)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Claims a cell and publishes the state", func(t *testing.T) {
		// Given: a fresh 5x5 game
		manager, deps := newTestManager(t, 5)
		engine, err := tilous.New(5)
		require.NoError(t, err)
		startWith(manager, engine)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Once()
		deps.expectPublish(1)

		// When: the first player claims a cell next to its corner
		snapshot, err := manager.PlaceCell(ctx, "alice", "alice-pwd", 0, 1)

		// Then: the cell is owned and paid for
		require.NoError(t, err)
		assert.Equal(t, entity.OwnedBy(entity.Player1), snapshot.Cells[0][1])
		assert.Equal(t, 0, snapshot.Resources[entity.Player1])
	})

	t.Run("Rule violations are returned and nothing is published", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)
		engine, err := tilous.New(5)
		require.NoError(t, err)
		startWith(manager, engine)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "bob").Return(seated("bob", entity.Player2), nil).Once()
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Twice()

		_, err = manager.PlaceCell(ctx, "bob", "bob-pwd", 0, 3)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		_, err = manager.PlaceCell(ctx, "alice", "alice-pwd", 2, 2)
		require.ErrorIs(t, err, apperror.ErrNotAdjacent)

		_, err = manager.PlaceCell(ctx, "alice", "alice-pwd", 5, 0)
		require.ErrorIs(t, err, apperror.ErrCellOutOfBoard)
	})

	t.Run("Winning move archives the result once", func(t *testing.T) {
		// Given: a 2x2 game where only players 1 and 2 are left
		manager, deps := newTestManager(t, 2)
		startWith(manager, duelBeforeWin(t))

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Twice()
		deps.expectPublish(1)
		deps.resultRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(result *entity.GameResult) bool {
				return result.Winner == entity.Player1 &&
					result.BoardSize == 2 &&
					result.Players[entity.Player2] == "bob" &&
					result.FinishedAt.Equal(time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)) &&
					result.ID != ""
			})).
			Return(nil).
			Once()

		// When: player 1 captures the last enemy cell
		snapshot, err := manager.PlaceCell(ctx, "alice", "alice-pwd", 0, 1)

		// Then: the game is over and player 1 won
		require.NoError(t, err)
		assert.True(t, snapshot.GameOver)
		require.NotNil(t, snapshot.Winner)
		assert.Equal(t, entity.Player1, *snapshot.Winner)

		winner, err := manager.Winner(ctx)
		require.NoError(t, err)
		require.NotNil(t, winner)
		assert.Equal(t, entity.Player1, *winner)

		// When: the winner tries to keep playing
		_, err = manager.PlaceCell(ctx, "alice", "alice-pwd", 1, 0)

		// Then: the game is finished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Failed archive is retried after the game is over", func(t *testing.T) {
		// Given: a winning move while the results archive is down
		manager, deps := newTestManager(t, 2)
		startWith(manager, duelBeforeWin(t))

		var archived []string
		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Twice()
		deps.expectPublish(1)
		deps.resultRepo.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.GameResult")).
			Run(func(_ context.Context, result *entity.GameResult) { archived = append(archived, result.ID) }).
			Return(errRedisDown).
			Once()

		_, err := manager.PlaceCell(ctx, "alice", "alice-pwd", 0, 1)
		require.NoError(t, err)

		_, err = manager.PlaceCell(ctx, "alice", "alice-pwd", 1, 0)
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		// When: the winner is asked for with the archive back
		deps.resultRepo.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.GameResult")).
			Run(func(_ context.Context, result *entity.GameResult) { archived = append(archived, result.ID) }).
			Return(nil).
			Once()

		winner, err := manager.Winner(ctx)
		require.NoError(t, err)
		require.NotNil(t, winner)

		// Then: the same result is written again, and never after it was saved
		require.Len(t, archived, 2)
		assert.Equal(t, archived[0], archived[1])

		_, err = manager.Winner(ctx)
		require.NoError(t, err)

		snapshot, err := manager.State(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.GameOver)
		assert.Len(t, archived, 2)
	})

	t.Run("Storage failures do not undo the move", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)
		engine, err := tilous.New(5)
		require.NoError(t, err)
		startWith(manager, engine)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errRedisDown).Once()
		deps.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		snapshot, err := manager.PlaceCell(ctx, "alice", "alice-pwd", 1, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.OwnedBy(entity.Player1), snapshot.Cells[1][0])
	})
}

func TestGameManager_EndTurn(t *testing.T) {
	ctx := context.Background()

	// Given: a game where player 1 claimed a cell
	manager, deps := newTestManager(t, 5)
	engine, err := tilous.New(5)
	require.NoError(t, err)
	require.True(t, engine.Place(0, 1, entity.Player1))
	startWith(manager, engine)

	deps.playerRepo.EXPECT().GetByID(mock.Anything, "alice").Return(seated("alice", entity.Player1), nil).Twice()
	deps.expectPublish(1)

	// When: player 1 ends the turn
	snapshot, err := manager.EndTurn(ctx, "alice", "alice-pwd")

	// Then: player 2 moves next and player 1 collected the income
	require.NoError(t, err)
	assert.Equal(t, entity.Player2, snapshot.CurrentPlayer)
	assert.Equal(t, 3, snapshot.Resources[entity.Player1])

	// When: player 1 tries to end the turn again
	_, err = manager.EndTurn(ctx, "alice", "alice-pwd")

	// Then: it is not its turn anymore
	require.ErrorIs(t, err, apperror.ErrNotYourTurn)
}

func TestGameManager_PlayerID(t *testing.T) {
	ctx := context.Background()

	t.Run("Seat of a started game", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)
		engine, err := tilous.New(5)
		require.NoError(t, err)
		startWith(manager, engine)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "carol").Return(seated("carol", entity.Player3), nil).Once()

		seat, err := manager.PlayerID(ctx, "carol", "carol-pwd")

		require.NoError(t, err)
		assert.Equal(t, entity.Player3, seat)
	})

	t.Run("Before the start", func(t *testing.T) {
		manager, deps := newTestManager(t, 5)

		deps.playerRepo.EXPECT().GetByID(mock.Anything, "carol").Return(&entity.Player{ID: "carol", Password: "pwd"}, nil).Once()

		_, err := manager.PlayerID(ctx, "carol", "pwd")

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})
}

func TestGameManager_StateAndWinner(t *testing.T) {
	ctx := context.Background()

	// Given: a manager without a game
	manager, deps := newTestManager(t, 5)

	// Then: there is no state and no winner
	_, err := manager.State(ctx)
	require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

	winner, err := manager.Winner(ctx)
	require.NoError(t, err)
	assert.Nil(t, winner)

	// When: a game is running and then the manager is reset
	engine, err := tilous.New(5)
	require.NoError(t, err)
	startWith(manager, engine)

	winner, err = manager.Winner(ctx)
	require.NoError(t, err)
	assert.Nil(t, winner)

	deps.playerRepo.EXPECT().Clear(mock.Anything).Return(nil).Once()
	deps.gameRepo.EXPECT().Delete(mock.Anything).Return(nil).Once()
	require.NoError(t, manager.Reset(ctx))

	// Then: the game is gone
	_, err = manager.State(ctx)
	require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
}

func TestGameManager_History(t *testing.T) {
	ctx := context.Background()
	manager, deps := newTestManager(t, 5)

	results := []*entity.GameResult{{ID: "a", Winner: entity.Player2}}
	deps.resultRepo.EXPECT().List(mock.Anything, 10).Return(results, nil).Once()

	history, err := manager.History(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, results, history)

	deps.resultRepo.EXPECT().List(mock.Anything, 5).Return(nil, errRedisDown).Once()

	_, err = manager.History(ctx, 5)
	require.ErrorIs(t, err, errRedisDown)
}
