// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appmsg "github.com/lazypass/lazypass/internal/app"
	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/config"
	"github.com/lazypass/lazypass/internal/crypto"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/mock"
	"github.com/lazypass/lazypass/internal/secret"
	"github.com/lazypass/lazypass/internal/service"
	"github.com/lazypass/lazypass/internal/tui"
	"github.com/lazypass/lazypass/internal/typist"
	"github.com/lazypass/lazypass/internal/workers"
	"github.com/lazypass/lazypass/models"
)

const password = "a6265ee42c5e60a7702329bb86e79573927ab8825cd18c827f85a70ccb57c487"

type fakeUI struct {
	err error
	ran bool
}

func (f *fakeUI) Run(context.Context) error {
	f.ran = true
	return f.err
}

type fakePrompt struct {
	phrase string
	err    error
}

func (f fakePrompt) ReadPhrase(string) (string, error) { return f.phrase, f.err }

type fakeKeeper struct {
	closed int
}

func (f *fakeKeeper) Close() error {
	f.closed++
	return nil
}

type fakePasswords struct {
	err    error
	inputs []string
}

func (f *fakePasswords) Generate(_ context.Context, input string) (string, error) {
	f.inputs = append(f.inputs, input)
	return password, f.err
}

func (f *fakePasswords) Ready() bool { return f.err == nil }

type fakeDelivery struct {
	copied, typed  []string
	waited         int
	err            error
	noCopy, noType bool
}

func (f *fakeDelivery) CanCopy() bool { return !f.noCopy }

func (f *fakeDelivery) CanType() bool { return !f.noType }

func (f *fakeDelivery) Copy(text string) error {
	f.copied = append(f.copied, text)
	return f.err
}

func (f *fakeDelivery) Type(_ context.Context, text string) error {
	f.typed = append(f.typed, text)
	return f.err
}

func (f *fakeDelivery) Wait() { f.waited++ }

type fixture struct {
	passwords *fakePasswords
	delivery  *fakeDelivery
	keeper    *fakeKeeper
	ui        *fakeUI
	out       *bytes.Buffer
}

func newTestApp(t *testing.T, mode string, prompt Prompter) (*App, *fixture) {
	t.Helper()
	f := &fixture{
		passwords: &fakePasswords{},
		delivery:  &fakeDelivery{},
		keeper:    &fakeKeeper{},
		ui:        &fakeUI{},
		out:       &bytes.Buffer{},
	}
	app, err := NewApp(mode, Deps{
		Services: &service.Services{
			PasswordService: f.passwords,
			DeliveryService: f.delivery,
		},
		UI:     f.ui,
		Prompt: prompt,
		Pool:   workers.NewPool(1),
		Keeper: f.keeper,
		Out:    f.out,
	}, logger.Nop())
	require.NoError(t, err)
	return app, f
}

func TestApp_TUI_UserQuitIsNotAnError(t *testing.T) {
	app, f := newTestApp(t, config.ModeTUI, nil)
	f.ui.err = tui.ErrUserQuit

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, f.ui.ran)
	assert.Equal(t, 1, f.delivery.waited)
	assert.Equal(t, 1, f.keeper.closed)
}

func TestApp_TUI_ErrorStillShutsDown(t *testing.T) {
	app, f := newTestApp(t, config.ModeTUI, nil)
	boom := errors.New("boom")
	f.ui.err = boom

	assert.ErrorIs(t, app.Run(context.Background()), boom)
	assert.Equal(t, 1, f.delivery.waited)
	assert.Equal(t, 1, f.keeper.closed)
}

func TestApp_Print(t *testing.T) {
	app, f := newTestApp(t, config.ModePrint, fakePrompt{phrase: "myphrase"})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, password+"\n", f.out.String())
	assert.Equal(t, []string{"myphrase"}, f.passwords.inputs)
	assert.Equal(t, 1, f.keeper.closed)
}

func TestApp_Print_Uninitialized(t *testing.T) {
	app, f := newTestApp(t, config.ModePrint, fakePrompt{phrase: "myphrase"})
	f.passwords.err = secret.ErrVaultUninitialized

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, secret.ErrVaultUninitialized)
	assert.Empty(t, f.out.String())
	assert.Equal(t, 1, f.keeper.closed)
}

func TestApp_EmptyPhrase(t *testing.T) {
	app, f := newTestApp(t, config.ModePrint, fakePrompt{phrase: ""})

	assert.ErrorIs(t, app.Run(context.Background()), ErrEmptyPhrase)
	assert.Empty(t, f.passwords.inputs)
}

func TestApp_PromptError(t *testing.T) {
	boom := errors.New("no tty")
	app, _ := newTestApp(t, config.ModeCopy, fakePrompt{err: boom})

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}

func TestApp_Copy(t *testing.T) {
	app, f := newTestApp(t, config.ModeCopy, fakePrompt{phrase: "myphrase"})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{password}, f.delivery.copied)
	assert.Equal(t, 1, f.delivery.waited)
	assert.Empty(t, f.out.String())
}

func TestApp_Type(t *testing.T) {
	app, f := newTestApp(t, config.ModeType, fakePrompt{phrase: "myphrase"})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{password}, f.delivery.typed)
}

func TestApp_Copy_NoClipboard(t *testing.T) {
	app, f := newTestApp(t, config.ModeCopy, fakePrompt{phrase: "myphrase"})
	f.delivery.noCopy = true

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, clipboard.ErrUnsupported)
	assert.Equal(t, appmsg.MsgClipboardFailed, appmsg.UserMessage(err))
	assert.Empty(t, f.passwords.inputs, "no derivation without a clipboard")
	assert.Empty(t, f.delivery.copied)
	assert.Equal(t, 1, f.keeper.closed)
}

func TestApp_Type_NoBackend(t *testing.T) {
	app, f := newTestApp(t, config.ModeType, fakePrompt{phrase: "myphrase"})
	f.delivery.noType = true

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, typist.ErrUnavailable)
	assert.Equal(t, appmsg.MsgTypingUnavailable, appmsg.UserMessage(err))
	assert.Empty(t, f.passwords.inputs)
	assert.Empty(t, f.delivery.typed)
}

func TestApp_Type_CancelledDuringDelay(t *testing.T) {
	app, f := newTestApp(t, config.ModeType, fakePrompt{phrase: "myphrase"})
	app.typeDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
	assert.Empty(t, f.delivery.typed)
	assert.Equal(t, 1, f.keeper.closed)
}

func TestNewApp_Validation(t *testing.T) {
	pool := workers.NewPool(1)
	svcs := &service.Services{}

	_, err := NewApp(config.ModeTUI, Deps{Services: svcs, Pool: pool, Keeper: &fakeKeeper{}}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(config.ModePrint, Deps{Services: svcs, Pool: pool, Keeper: &fakeKeeper{}}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(config.ModePrint, Deps{Services: svcs, Pool: pool}, logger.Nop())
	assert.Error(t, err)
}

// TestApp_EndToEnd wires the real keeper, deriver, pool and clipboard guard.
func TestApp_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := mock.NewMockClipboard(ctrl)
	gomock.InOrder(
		board.EXPECT().WriteAll(password).Return(nil),
		board.EXPECT().ReadAll().Return(password, nil),
		board.EXPECT().WriteAll("").Return(nil),
	)

	keeper := secret.NewKeeper()
	require.NoError(t, keeper.Init([]byte("pepper123")))
	deriver, err := crypto.NewPasswordDeriver(crypto.TestParams)
	require.NoError(t, err)

	mc := clock.NewMock()
	pool := workers.NewPool(1)
	svcs, err := service.NewServices(service.Deps{
		Vaults:    keeper,
		Deriver:   deriver,
		Pool:      pool,
		Guard:     clipboard.NewGuard(board, 10*time.Second, clipboard.WithClock(mc)),
		Typist:    typist.New(),
		BuildInfo: models.NewAppBuildInfo("test", "", ""),
	}, logger.Nop())
	require.NoError(t, err)

	var status bytes.Buffer
	app, err := NewApp(config.ModeCopy, Deps{
		Services: svcs,
		Prompt:   NewTermPrompt(strings.NewReader("myphrase\n"), io.Discard),
		Pool:     pool,
		Keeper:   keeper,
		Status:   &status,
	}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	// Run blocks on the scheduled clear until the mock clock passes it.
	for range 1000 {
		select {
		case err = <-done:
			require.NoError(t, err)
			assert.False(t, keeper.Ready())
			assert.Contains(t, status.String(), "Copied to clipboard")
			return
		case <-time.After(5 * time.Millisecond):
			mc.Add(10 * time.Second)
		}
	}
	t.Fatal("app did not finish")
}
