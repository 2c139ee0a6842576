package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetCrop(t *testing.T) {
	cropRepo := mockRepo.NewMockCropRepository(t)
	service := NewCatalogService(cropRepo)

	ctx := context.Background()
	crop := &entity.Crop{ID: uuid.New(), Name: "高麗菜", Category: "葉菜類"}

	cropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)

	got, err := service.GetCrop(ctx, crop.ID)
	require.NoError(t, err)
	assert.Equal(t, crop, got)
}

func TestCatalogService_GetCrop_NotFound(t *testing.T) {
	cropRepo := mockRepo.NewMockCropRepository(t)
	service := NewCatalogService(cropRepo)

	ctx := context.Background()
	cropID := uuid.New()

	cropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

	_, err := service.GetCrop(ctx, cropID)
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}

func TestCatalogService_ListCrops(t *testing.T) {
	cropRepo := mockRepo.NewMockCropRepository(t)
	service := NewCatalogService(cropRepo)

	ctx := context.Background()
	crops := []*entity.Crop{
		{ID: uuid.New(), Name: "番茄", Category: "果菜類"},
		{ID: uuid.New(), Name: "茄子", Category: "果菜類"},
	}

	cropRepo.EXPECT().List(ctx, "果菜類").Return(crops, nil)

	got, err := service.ListCrops(ctx, "果菜類")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
