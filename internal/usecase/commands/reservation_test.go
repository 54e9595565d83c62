//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/logger"
	"reservas-web/internal/usecase/commands"
	"reservas-web/tests/common/builder"
	commandsmock "reservas-web/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockReservationGateway
	commands    commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockReservationGateway(s.mockCtrl)
	s.commands = commands.NewReservationCommands(s.mockGateway, logger.Discard())
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestSubmit_Success() {
	form := builder.NewReservationFormBuilder().Build()
	s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req reservation.Request) error {
			s.Equal("Ana Pérez", req.Name())
			s.Equal("7", req.EventID().String())
			n, ok := req.Seats().Value()
			s.True(ok)
			s.Equal(2, n)
			return nil
		}).Times(1)

	result, err := s.commands.Submit(context.Background(), form)
	s.Require().NoError(err)
	s.Equal(reservation.SuccessResult(), result)
	s.True(result.ResetsForm())
	s.Equal(reservation.PhaseDone, s.commands.Phase())
}

func (s *ReservationCommandsTestSuite) TestSubmit_MissingFieldsSkipsNetwork() {
	cases := []struct {
		name   string
		mutate func(*builder.ReservationFormBuilder)
	}{
		{name: "empty name", mutate: func(b *builder.ReservationFormBuilder) { b.WithName("") }},
		{name: "empty email", mutate: func(b *builder.ReservationFormBuilder) { b.WithEmail("") }},
		{name: "no event selected", mutate: func(b *builder.ReservationFormBuilder) { b.WithEventID("") }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Times(0)

			result, err := s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().With(tc.mutate).Build())
			s.Require().NoError(err)
			s.Equal(reservation.MessageMissingRequired, result.Message)
			s.True(result.Blocking())
			s.Equal(reservation.PhaseIdle, s.commands.Phase())
		})
	}
}

func (s *ReservationCommandsTestSuite) TestSubmit_Rejected() {
	cases := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "server detail shown verbatim", err: errs.NewRejected(409, "Sin cupos disponibles"), wantMessage: "Sin cupos disponibles"},
		{name: "generic message without detail", err: errs.Wrap(errs.NewRejected(500, ""), "POST /reservas"), wantMessage: reservation.MessageRejected},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

			result, err := s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().Build())
			s.Require().NoError(err)
			s.Equal(reservation.OutcomeRejected, result.Outcome)
			s.Equal(tc.wantMessage, result.Message)
			s.False(result.ResetsForm())
		})
	}
}

func (s *ReservationCommandsTestSuite) TestSubmit_ConnectionFailure() {
	s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(errs.Mark(errs.New("dial tcp: connection refused"), errs.ErrConnection)).Times(1)

	result, err := s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().Build())
	s.Require().NoError(err)
	s.Equal(reservation.ConnectionResult(), result)
}

func (s *ReservationCommandsTestSuite) TestSubmit_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ reservation.Request) error {
			cancel()
			return ctx.Err()
		}).Times(1)

	_, err := s.commands.Submit(ctx, builder.NewReservationFormBuilder().Build())
	s.ErrorIs(err, context.Canceled)
	s.Equal(reservation.PhaseDone, s.commands.Phase())
}

func (s *ReservationCommandsTestSuite) TestSubmit_SecondSubmitWhileInFlight() {
	started := make(chan struct{})
	release := make(chan struct{})
	s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, reservation.Request) error {
			close(started)
			<-release
			return nil
		}).Times(1)

	var wg sync.WaitGroup
	var first reservation.Result
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().Build())
	}()

	<-started
	s.Equal(reservation.PhaseSubmitting, s.commands.Phase())
	_, err := s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().Build())
	s.True(errs.Is(err, errs.ErrSubmissionInProgress))

	close(release)
	wg.Wait()
	s.True(first.Success())
}

func (s *ReservationCommandsTestSuite) TestSubmit_AllowedAgainAfterDone() {
	s.mockGateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for range 2 {
		result, err := s.commands.Submit(context.Background(), builder.NewReservationFormBuilder().Build())
		s.Require().NoError(err)
		s.True(result.Success())
	}
}
