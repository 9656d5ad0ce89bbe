package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brandscope/api/internal/domain"
	apperrors "github.com/brandscope/api/pkg/errors"
)

func TestBrandService_GetBrand(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := NewBrandService(brands, new(mockPublisher), testLogger())

	want := &domain.Brand{ID: uuid.NewString(), OwnerID: "identity-1", BrandName: "Blue Bottle", Industry: "cafe"}
	brands.On("GetByOwner", mock.Anything, "identity-1").Return(want, nil)

	got, err := svc.GetBrand(context.Background(), "identity-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	brands.AssertExpectations(t)
}

func TestBrandService_GetBrand_NoneIsNotError(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := NewBrandService(brands, new(mockPublisher), testLogger())

	brands.On("GetByOwner", mock.Anything, "identity-1").Return(nil, apperrors.NotFound("brand", "identity-1"))

	got, err := svc.GetBrand(context.Background(), "identity-1")

	require.NoError(t, err)
	assert.Nil(t, got)
	brands.AssertExpectations(t)
}

func TestBrandService_CreateBrand(t *testing.T) {
	brands := new(mockBrandRepo)
	publisher := new(mockPublisher)
	svc := NewBrandService(brands, publisher, testLogger())

	brands.On("ExistsByOwner", mock.Anything, "identity-1").Return(false, nil)
	brands.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
		return b.OwnerID == "identity-1" &&
			b.BrandName == "Blue Bottle" &&
			b.Industry == "cafe" &&
			b.InstagramHandle != nil && *b.InstagramHandle == "@bluebottle" &&
			b.ID != "" && !b.CreatedAt.IsZero()
	})).Return(nil)
	publisher.On("BrandCreated", mock.Anything, mock.Anything).Return(nil)

	brand, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
		BrandName:       "  Blue Bottle  ",
		InstagramHandle: "bluebottle",
		Industry:        "cafe",
	})

	require.NoError(t, err)
	assert.Equal(t, "Blue Bottle", brand.BrandName)
	require.NotNil(t, brand.InstagramHandle)
	assert.Equal(t, "@bluebottle", *brand.InstagramHandle)
	assert.True(t, brand.CreatedAt.Equal(brand.CreatedAt.UTC()))
	brands.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBrandService_CreateBrand_NoHandleStoredAsNull(t *testing.T) {
	brands := new(mockBrandRepo)
	publisher := new(mockPublisher)
	svc := NewBrandService(brands, publisher, testLogger())

	brands.On("ExistsByOwner", mock.Anything, "identity-1").Return(false, nil)
	brands.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
		return b.InstagramHandle == nil
	})).Return(nil)
	publisher.On("BrandCreated", mock.Anything, mock.Anything).Return(nil)

	brand, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
		BrandName:       "Blue Bottle",
		InstagramHandle: "   ",
		Industry:        "cafe",
	})

	require.NoError(t, err)
	assert.Nil(t, brand.InstagramHandle)
	brands.AssertExpectations(t)
}

func TestBrandService_CreateBrand_InvalidName(t *testing.T) {
	svc := NewBrandService(new(mockBrandRepo), new(mockPublisher), testLogger())

	for _, name := range []string{"", "A", "   "} {
		_, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
			BrandName: name,
			Industry:  "cafe",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "name %q", name)
	}
}

func TestBrandService_CreateBrand_InvalidIndustry(t *testing.T) {
	svc := NewBrandService(new(mockBrandRepo), new(mockPublisher), testLogger())

	_, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
		BrandName: "Blue Bottle",
		Industry:  "aerospace",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestBrandService_CreateBrand_SecondBrandConflicts(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := NewBrandService(brands, new(mockPublisher), testLogger())

	brands.On("ExistsByOwner", mock.Anything, "identity-1").Return(true, nil)

	_, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
		BrandName: "Second Brand",
		Industry:  "food",
	})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.Equal(t, 409, apperrors.HTTPStatus(err))
	brands.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBrandService_CreateBrand_PublishFailureDoesNotFail(t *testing.T) {
	brands := new(mockBrandRepo)
	publisher := new(mockPublisher)
	svc := NewBrandService(brands, publisher, testLogger())

	brands.On("ExistsByOwner", mock.Anything, "identity-1").Return(false, nil)
	brands.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("BrandCreated", mock.Anything, mock.Anything).Return(errors.New("kafka down"))

	brand, err := svc.CreateBrand(context.Background(), "identity-1", CreateBrandInput{
		BrandName: "Blue Bottle",
		Industry:  "cafe",
	})

	require.NoError(t, err)
	assert.NotNil(t, brand)
}
