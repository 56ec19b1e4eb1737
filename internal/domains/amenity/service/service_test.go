package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"socihub/config"
	otelMocks "socihub/infras/otel/mocks"
	amenityMocks "socihub/internal/domains/amenity/mocks"
	"socihub/internal/domains/amenity/model"
	"socihub/internal/domains/amenity/model/dto"
	"socihub/internal/domains/amenity/service"
	cacheMocks "socihub/shared/cache/mocks"
	"socihub/shared/constant"
	gDto "socihub/shared/dto"
	"socihub/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.Amenity, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache) {
	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Mutations invalidate caches from a goroutine that may outlive the test
	// body.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func TestAmenityService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAmenityRequest
		setupMock func(repo *amenityMocks.MockAmenity)
		wantErr   bool
	}{
		{
			name: "successful creation defaults to active",
			req: dto.CreateAmenityRequest{
				Name:            "Clubhouse",
				Capacity:        40,
				PricePerDay:     1000,
				PricePerHalfDay: 600,
				PricePerHour:    50,
			},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, amenity model.Amenity) error {
						assert.Equal(t, model.StatusActive, amenity.Status)
						assert.NotEmpty(t, amenity.ID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateAmenityRequest{
				Name:     "Clubhouse",
				Capacity: 40,
			},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newService(ctrl)
			tt.setupMock(mockRepo)

			res, err := svc.Create(adminCtx(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Name, res.Name)
			}
		})
	}
}

func TestAmenityService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		notFound  bool
	}{
		{
			name: "found on cache miss",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{ID: "a1", Name: "Clubhouse", Status: model.StatusActive}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{}, nil)
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name: "repository error",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newService(ctrl)
			tt.setupMock(mockRepo, mockCache)

			_, err := svc.Get(adminCtx(), "a1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, failure.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Amenity{
			{ID: "a1", Name: "Clubhouse"},
			{ID: "a2", Name: "Tennis Court"},
		}, nil)

	res, err := svc.GetAll(adminCtx(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Amenities, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestAmenityService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateAmenityRequest
		setupMock func(repo *amenityMocks.MockAmenity)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateAmenityRequest{Name: "Main Clubhouse"},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "amenity not found",
			req:  dto.UpdateAmenityRequest{Name: "Main Clubhouse"},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update rejected",
			req:       dto.UpdateAmenityRequest{},
			setupMock: func(repo *amenityMocks.MockAmenity) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newService(ctrl)
			tt.setupMock(mockRepo)

			err := svc.Update(adminCtx(), tt.req, "a1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *amenityMocks.MockAmenity)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "amenity not found",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newService(ctrl)
			tt.setupMock(mockRepo)

			err := svc.Delete(adminCtx(), "a1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
