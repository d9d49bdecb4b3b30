package equipment_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	equipmentorch "github.com/KirkDiggler/mechbay-api/internal/orchestrators/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/mechbay-api/internal/repositories/character/mock"
	itemmock "github.com/KirkDiggler/mechbay-api/internal/repositories/item/mock"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	mechmock "github.com/KirkDiggler/mechbay-api/internal/repositories/mech/mock"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	partmock "github.com/KirkDiggler/mechbay-api/internal/repositories/part/mock"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/testutils"
)

// CascadeTestSuite injects store failures part way through the delete and
// transfer cascades
type CascadeTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	mockCharacter *charactermock.MockRepository
	mockMech      *mechmock.MockRepository
	mockPart      *partmock.MockRepository
	orchestrator  *equipmentorch.Orchestrator
	mech          *equipment.Mech
	attached      []*equipment.Part
}

func (s *CascadeTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockCharacter = charactermock.NewMockRepository(s.ctrl)
	s.mockMech = mechmock.NewMockRepository(s.ctrl)
	s.mockPart = partmock.NewMockRepository(s.ctrl)

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	s.orchestrator, err = equipmentorch.New(&equipmentorch.Config{
		CharacterRepo:   s.mockCharacter,
		MechRepo:        s.mockMech,
		PartRepo:        s.mockPart,
		ItemRepo:        itemmock.NewMockRepository(s.ctrl),
		Engine:          eng,
		EventBus:        events.NewBus(),
		IDGenerator:     idgen.NewSequential("id"),
		MechIDGenerator: idgen.NewSequential("mech"),
	})
	s.Require().NoError(err)

	s.mech = testutils.CreateTestMech("m1", pilot, testutils.TestMechID)
	s.attached = []*equipment.Part{
		testutils.CreateTestPartOn("p1", pilot, "Laser", testutils.TestMechID, equipment.LocationArmL),
		testutils.CreateTestPartOn("p2", pilot, "Heatsink", testutils.TestMechID, equipment.LocationTorsoC),
	}
}

func (s *CascadeTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CascadeTestSuite) expectMech() {
	s.mockMech.EXPECT().
		Get(gomock.Any(), mechrepo.GetInput{ID: "m1"}).
		Return(&mechrepo.GetOutput{Mech: s.mech.Copy()}, nil).
		AnyTimes()
}

func (s *CascadeTestSuite) expectAttached() {
	s.mockPart.EXPECT().
		ListByMechID(gomock.Any(), partrepo.ListByMechIDInput{OwnerID: pilot, MechID: testutils.TestMechID}).
		Return(&partrepo.ListByMechIDOutput{Parts: s.attached}, nil)
}

func (s *CascadeTestSuite) expectDestinationParts(parts ...*equipment.Part) {
	s.mockPart.EXPECT().
		ListByMechID(gomock.Any(), partrepo.ListByMechIDInput{OwnerID: otherPilot, MechID: testutils.TestMechID}).
		Return(&partrepo.ListByMechIDOutput{Parts: parts}, nil)
}

func (s *CascadeTestSuite) expectCharacter(id, equipped string) {
	char := testutils.CreateTestCharacter(id)
	char.EquippedMechID = equipped
	s.mockCharacter.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: id}).
		Return(&characterrepo.GetOutput{Character: char}, nil).
		AnyTimes()
}

func (s *CascadeTestSuite) TestDeleteMechFailsAfterPartsSettled() {
	s.expectMech()
	s.expectAttached()
	s.expectCharacter(pilot, equipment.UnattachedMechID)

	s.mockPart.EXPECT().
		BatchDelete(gomock.Any(), partrepo.BatchDeleteInput{IDs: []string{"p1", "p2"}}).
		Return(&partrepo.BatchDeleteOutput{Deleted: 2}, nil)
	s.mockMech.EXPECT().
		Delete(gomock.Any(), mechrepo.DeleteInput{ID: "m1"}).
		Return(nil, errors.Internal("connection reset"))

	_, err := s.orchestrator.DeleteMech(s.ctx, &equipmentsvc.DeleteMechInput{
		CharacterID:  pilot,
		MechEntityID: "m1",
		Resolution:   equipmentsvc.ResolutionDeleteAll,
	})
	s.Require().Error(err)
	s.True(errors.IsCascadeInterrupted(err))
	s.True(errors.IsAborted(err))
	s.Equal("delete_mech", errors.CascadeStage(err))

	meta := errors.GetMeta(err)
	s.Equal("delete_mech", meta[errors.MetaOperation])
	s.Equal([]string{"enumerate_parts", "delete_parts"}, meta[errors.MetaCompleted])
}

func (s *CascadeTestSuite) TestDeleteMechFailsResettingEquipped() {
	s.expectMech()
	s.expectAttached()
	s.expectCharacter(pilot, testutils.TestMechID)

	s.mockPart.EXPECT().
		BatchUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input partrepo.BatchUpdateInput) (*partrepo.BatchUpdateOutput, error) {
			for _, p := range input.Parts {
				s.Equal(equipment.UnattachedMechID, p.MechID)
				s.Equal(equipment.LocationLight, p.Location)
			}
			return &partrepo.BatchUpdateOutput{Parts: input.Parts}, nil
		})
	s.mockCharacter.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("connection reset"))

	_, err := s.orchestrator.DeleteMech(s.ctx, &equipmentsvc.DeleteMechInput{
		CharacterID:  pilot,
		MechEntityID: "m1",
		Resolution:   equipmentsvc.ResolutionUnassign,
	})
	s.Require().Error(err)
	s.True(errors.IsCascadeInterrupted(err))
	s.Equal("reset_equipped", errors.CascadeStage(err))
	s.Equal([]string{"enumerate_parts", "unassign_parts"}, errors.GetMeta(err)[errors.MetaCompleted])
}

func (s *CascadeTestSuite) TestDeleteMechFailureBeforeAnyWriteIsNotInterrupted() {
	s.expectMech()
	s.mockPart.EXPECT().
		ListByMechID(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("connection reset"))

	_, err := s.orchestrator.DeleteMech(s.ctx, &equipmentsvc.DeleteMechInput{
		CharacterID:  pilot,
		MechEntityID: "m1",
		Resolution:   equipmentsvc.ResolutionDeleteAll,
	})
	s.Require().Error(err)
	s.False(errors.IsCascadeInterrupted(err))
	s.True(errors.IsInternal(err))
}

func (s *CascadeTestSuite) TestDeleteMechCancelledContextBeforeWrites() {
	s.expectMech()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	// the mocks ignore the context, so only the cascade sees the cancellation
	_, err := s.orchestrator.DeleteMech(ctx, &equipmentsvc.DeleteMechInput{
		CharacterID:  pilot,
		MechEntityID: "m1",
		Resolution:   equipmentsvc.ResolutionDeleteAll,
	})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.False(errors.IsCascadeInterrupted(err))
}

func (s *CascadeTestSuite) TestTransferFailsCopyingParts() {
	s.expectMech()
	s.expectCharacter(otherPilot, equipment.UnattachedMechID)
	s.mockMech.EXPECT().
		ListByOwner(gomock.Any(), mechrepo.ListByOwnerInput{OwnerID: otherPilot}).
		Return(&mechrepo.ListByOwnerOutput{Mechs: []*equipment.Mech{}}, nil)
	s.expectAttached()
	s.expectDestinationParts()

	s.mockMech.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input mechrepo.CreateInput) (*mechrepo.CreateOutput, error) {
			s.Equal(otherPilot, input.Mech.OwnerID)
			s.Equal(testutils.TestMechID, input.Mech.MechID)
			s.NotEqual("m1", input.Mech.ID)
			return &mechrepo.CreateOutput{Mech: input.Mech}, nil
		})
	s.mockPart.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any()).
		Return(nil, errors.Aborted("watched keys changed"))

	// nothing on the source side is touched
	s.mockPart.EXPECT().BatchDelete(gomock.Any(), gomock.Any()).Times(0)
	s.mockMech.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orchestrator.TransferMech(s.ctx, &equipmentsvc.TransferMechInput{
		SourceCharacterID:      pilot,
		DestinationCharacterID: otherPilot,
		MechEntityID:           "m1",
	})
	s.Require().Error(err)
	s.True(errors.IsCascadeInterrupted(err))
	s.Equal("copy_parts", errors.CascadeStage(err))

	meta := errors.GetMeta(err)
	s.Equal("transfer_mech", meta[errors.MetaOperation])
	s.Equal([]string{"enumerate_parts", "copy_mech"}, meta[errors.MetaCompleted])
}

func (s *CascadeTestSuite) TestTransferFailsDeletingSourceMech() {
	s.expectMech()
	s.expectCharacter(pilot, equipment.UnattachedMechID)
	s.expectCharacter(otherPilot, equipment.UnattachedMechID)
	s.mockMech.EXPECT().
		ListByOwner(gomock.Any(), mechrepo.ListByOwnerInput{OwnerID: otherPilot}).
		Return(&mechrepo.ListByOwnerOutput{Mechs: []*equipment.Mech{}}, nil)
	s.expectAttached()
	s.expectDestinationParts()

	s.mockMech.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input mechrepo.CreateInput) (*mechrepo.CreateOutput, error) {
			return &mechrepo.CreateOutput{Mech: input.Mech}, nil
		})
	s.mockPart.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input partrepo.BatchCreateInput) (*partrepo.BatchCreateOutput, error) {
			s.Len(input.Parts, 2)
			return &partrepo.BatchCreateOutput{Parts: input.Parts}, nil
		})
	s.mockPart.EXPECT().
		BatchDelete(gomock.Any(), partrepo.BatchDeleteInput{IDs: []string{"p1", "p2"}}).
		Return(&partrepo.BatchDeleteOutput{Deleted: 2}, nil)
	s.mockMech.EXPECT().
		Delete(gomock.Any(), mechrepo.DeleteInput{ID: "m1"}).
		Return(nil, errors.Internal("connection reset"))

	_, err := s.orchestrator.TransferMech(s.ctx, &equipmentsvc.TransferMechInput{
		SourceCharacterID:      pilot,
		DestinationCharacterID: otherPilot,
		MechEntityID:           "m1",
	})
	s.Require().Error(err)
	s.Equal("delete_mech", errors.CascadeStage(err))
	s.Equal(
		[]string{"enumerate_parts", "copy_mech", "copy_parts", "delete_source_parts"},
		errors.GetMeta(err)[errors.MetaCompleted],
	)
}

func (s *CascadeTestSuite) TestTransferUnassignsDestinationStraysBeforeCopy() {
	s.expectMech()
	s.expectCharacter(otherPilot, equipment.UnattachedMechID)
	s.mockMech.EXPECT().
		ListByOwner(gomock.Any(), mechrepo.ListByOwnerInput{OwnerID: otherPilot}).
		Return(&mechrepo.ListByOwnerOutput{Mechs: []*equipment.Mech{}}, nil)
	s.expectAttached()
	s.expectDestinationParts(
		testutils.CreateTestPartOn("stray", otherPilot, "Autocannon", testutils.TestMechID, equipment.LocationArmR),
	)

	gomock.InOrder(
		s.mockPart.EXPECT().
			BatchUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input partrepo.BatchUpdateInput) (*partrepo.BatchUpdateOutput, error) {
				s.Require().Len(input.Parts, 1)
				s.Equal("stray", input.Parts[0].ID)
				s.Equal(equipment.UnattachedMechID, input.Parts[0].MechID)
				s.Equal(equipment.LocationLight, input.Parts[0].Location)
				return &partrepo.BatchUpdateOutput{Parts: input.Parts}, nil
			}),
		s.mockMech.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.Internal("connection reset")),
	)

	_, err := s.orchestrator.TransferMech(s.ctx, &equipmentsvc.TransferMechInput{
		SourceCharacterID:      pilot,
		DestinationCharacterID: otherPilot,
		MechEntityID:           "m1",
	})
	s.Require().Error(err)
	s.True(errors.IsCascadeInterrupted(err))
	s.Equal("copy_mech", errors.CascadeStage(err))
	s.Equal([]string{"enumerate_parts", "unassign_stray_parts"}, errors.GetMeta(err)[errors.MetaCompleted])
}

func TestCascadeTestSuite(t *testing.T) {
	suite.Run(t, new(CascadeTestSuite))
}
