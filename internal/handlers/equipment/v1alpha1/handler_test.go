package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/handlers/equipment/v1alpha1"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
	equipmentmock "github.com/KirkDiggler/mechbay-api/internal/services/equipment/mock"
	"github.com/KirkDiggler/mechbay-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	mockService *equipmentmock.MockService
	handler     *v1alpha1.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockService = equipmentmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EquipmentService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestAssignPart() {
	part := testutils.CreateTestPartOn("p3", testutils.TestCharacterID, "Laser", testutils.TestMechID, equipment.LocationArmL)

	s.mockService.EXPECT().
		AssignPart(s.ctx, &equipmentsvc.AssignPartInput{
			CharacterID: testutils.TestCharacterID,
			PartID:      "p3",
			MechID:      testutils.TestMechID,
			Location:    equipment.LocationArmL,
		}).
		Return(&equipmentsvc.AssignPartOutput{Part: part, Changed: true}, nil)

	resp, err := s.handler.AssignPart(s.ctx, s.request(map[string]any{
		"characterID": testutils.TestCharacterID,
		"partID":      "p3",
		"mechID":      testutils.TestMechID,
		"location":    "arm_l",
	}))
	s.Require().NoError(err)
	s.True(resp.Fields["changed"].GetBoolValue())

	got := resp.Fields["part"].GetStructValue()
	s.Require().NotNil(got)
	s.Equal("p3", got.Fields["id"].GetStringValue())
	s.Equal(testutils.TestMechID, got.Fields["mechID"].GetStringValue())
	s.Equal("arm_l", got.Fields["location"].GetStringValue())
}

func (s *HandlerTestSuite) TestAssignPartValidationError() {
	s.mockService.EXPECT().
		AssignPart(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().Field("mechID", "no mech with mechID xyz999 on this character").Build())

	_, err := s.handler.AssignPart(s.ctx, s.request(map[string]any{
		"characterID": testutils.TestCharacterID,
		"partID":      "p3",
		"mechID":      "xyz999",
		"location":    "arm_l",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestMalformedRequest() {
	_, err := s.handler.AssignPart(s.ctx, s.request(map[string]any{"partID": 12}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetMech() {
	mech := testutils.CreateTestMech("m1", testutils.TestCharacterID, testutils.TestMechID)
	part := testutils.CreateTestPartOn("p1", testutils.TestCharacterID, "Heatsink", testutils.TestMechID, equipment.LocationTorsoC)

	s.mockService.EXPECT().
		GetMech(s.ctx, &equipmentsvc.GetMechInput{MechEntityID: "m1"}).
		Return(&equipmentsvc.GetMechOutput{
			Mech: mech,
			Summary: &engine.Summary{
				MechID:              testutils.TestMechID,
				StaticResources:     map[string]float64{"heatsink": 2},
				ConsumableResources: map[string]float64{},
				PartCount:           1,
				EnabledPartCount:    1,
				TotalWeight:         1,
			},
			Layout: engine.Layout{equipment.LocationTorsoC: {part}, equipment.LocationHead: {}},
		}, nil)

	resp, err := s.handler.GetMech(s.ctx, s.request(map[string]any{"mechEntityID": "m1"}))
	s.Require().NoError(err)

	summary := resp.Fields["summary"].GetStructValue()
	s.Require().NotNil(summary)
	s.Equal(2.0, summary.Fields["staticResourceTotals"].GetStructValue().Fields["heatsink"].GetNumberValue())
	s.Empty(summary.Fields["consumableResourceTotals"].GetStructValue().GetFields())

	layout := resp.Fields["layout"].GetStructValue()
	s.Len(layout.Fields["torso_c"].GetListValue().GetValues(), 1)
	s.Empty(layout.Fields["head"].GetListValue().GetValues())
	s.False(resp.Fields["repaired"].GetBoolValue())
}

func (s *HandlerTestSuite) TestGetMechRequiresID() {
	_, err := s.handler.GetMech(s.ctx, s.request(map[string]any{}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestDeleteMechNeedsResolution() {
	s.mockService.EXPECT().
		DeleteMech(s.ctx, &equipmentsvc.DeleteMechInput{CharacterID: testutils.TestCharacterID, MechEntityID: "m1"}).
		Return(nil, errors.FailedPrecondition("mech m1 has 2 attached parts, choose a resolution").
			WithMeta("parts_attached", 2))

	_, err := s.handler.DeleteMech(s.ctx, s.request(map[string]any{
		"characterID":  testutils.TestCharacterID,
		"mechEntityID": "m1",
	}))
	s.Require().Error(err)

	st := status.Convert(err)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("2", info.Metadata["parts_attached"])
}

func (s *HandlerTestSuite) TestDeleteMech() {
	s.mockService.EXPECT().
		DeleteMech(s.ctx, &equipmentsvc.DeleteMechInput{
			CharacterID:  testutils.TestCharacterID,
			MechEntityID: "m1",
			Resolution:   equipmentsvc.ResolutionUnassign,
		}).
		Return(&equipmentsvc.DeleteMechOutput{
			Outcome:       equipmentsvc.OutcomeDeleted,
			PartsAffected: 3,
			EquipReset:    true,
		}, nil)

	resp, err := s.handler.DeleteMech(s.ctx, s.request(map[string]any{
		"characterID":  testutils.TestCharacterID,
		"mechEntityID": "m1",
		"resolution":   "unassign",
	}))
	s.Require().NoError(err)
	s.Equal("deleted", resp.Fields["outcome"].GetStringValue())
	s.Equal(3.0, resp.Fields["partsAffected"].GetNumberValue())
	s.True(resp.Fields["equipReset"].GetBoolValue())
}

func (s *HandlerTestSuite) TestTransferMechInterrupted() {
	s.mockService.EXPECT().
		TransferMech(gomock.Any(), gomock.Any()).
		Return(nil, errors.CascadeInterrupted("transfer_mech", "copy_parts",
			[]string{"enumerate_parts", "copy_mech"}, errors.Internal("connection reset")))

	_, err := s.handler.TransferMech(s.ctx, s.request(map[string]any{
		"sourceCharacterID":      testutils.TestCharacterID,
		"destinationCharacterID": "char-test-002",
		"mechEntityID":           "m1",
	}))
	s.Require().Error(err)

	st := status.Convert(err)
	s.Equal(codes.Aborted, st.Code())
	s.Require().Len(st.Details(), 1)
	info := st.Details()[0].(*errdetails.ErrorInfo)
	s.Equal("copy_parts", info.Metadata[errors.MetaStage])
	s.Equal("transfer_mech", info.Metadata[errors.MetaOperation])
}

func (s *HandlerTestSuite) TestCreatePart() {
	enabled := false
	s.mockService.EXPECT().
		CreatePart(s.ctx, &equipmentsvc.CreatePartInput{
			CharacterID:  testutils.TestCharacterID,
			Name:         "Ammo Bin",
			Quantity:     2,
			Weight:       1.5,
			Resources:    equipment.Resources{"ammo": 10},
			ResourceType: equipment.ResourceTypeConsumable,
			Enabled:      &enabled,
			MechID:       testutils.TestMechID,
			Location:     equipment.LocationTorsoC,
		}).
		DoAndReturn(func(_ context.Context, in *equipmentsvc.CreatePartInput) (*equipmentsvc.CreatePartOutput, error) {
			p := equipment.NewPart(in.CharacterID, in.Name)
			p.ID = "p9"
			return &equipmentsvc.CreatePartOutput{Part: p}, nil
		})

	resp, err := s.handler.CreatePart(s.ctx, s.request(map[string]any{
		"characterID":  testutils.TestCharacterID,
		"name":         "Ammo Bin",
		"quantity":     2,
		"weight":       1.5,
		"resources":    map[string]any{"ammo": 10},
		"resourceType": "consumable",
		"enabled":      false,
		"mechID":       testutils.TestMechID,
		"location":     "torso_c",
	}))
	s.Require().NoError(err)
	s.Equal("p9", resp.Fields["part"].GetStructValue().Fields["id"].GetStringValue())
}

func (s *HandlerTestSuite) TestSetPartEnabled() {
	part := testutils.CreateTestPart("p1", testutils.TestCharacterID, "Laser")
	part.Enabled = false

	s.mockService.EXPECT().
		SetPartEnabled(s.ctx, &equipmentsvc.SetPartEnabledInput{PartID: "p1", Enabled: false}).
		Return(&equipmentsvc.SetPartEnabledOutput{Part: part, Changed: true}, nil)

	resp, err := s.handler.SetPartEnabled(s.ctx, s.request(map[string]any{"partID": "p1", "enabled": false}))
	s.Require().NoError(err)
	s.True(resp.Fields["changed"].GetBoolValue())
	s.False(resp.Fields["part"].GetStructValue().Fields["enabled"].GetBoolValue())
}

// TestOverGRPC drives the handler through a real server and client
func (s *HandlerTestSuite) TestOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1alpha1.RegisterEquipmentServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close()
	}()

	char := testutils.CreateTestCharacter(testutils.TestCharacterID)
	char.EquippedMechID = testutils.TestMechID
	s.mockService.EXPECT().
		EquipMech(gomock.Any(), &equipmentsvc.EquipMechInput{CharacterID: testutils.TestCharacterID, MechEntityID: "m1"}).
		Return(&equipmentsvc.EquipMechOutput{Character: char}, nil)
	s.mockService.EXPECT().
		GetMech(gomock.Any(), &equipmentsvc.GetMechInput{MechEntityID: "gone"}).
		Return(nil, errors.NotFound("mech with ID gone not found"))

	client := v1alpha1.NewEquipmentServiceClient(conn)

	resp, err := client.EquipMech(s.ctx, s.request(map[string]any{
		"characterID":  testutils.TestCharacterID,
		"mechEntityID": "m1",
	}))
	s.Require().NoError(err)
	s.Equal(testutils.TestMechID,
		resp.Fields["character"].GetStructValue().Fields["equippedMechID"].GetStringValue())

	_, err = client.GetMech(s.ctx, s.request(map[string]any{"mechEntityID": "gone"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
