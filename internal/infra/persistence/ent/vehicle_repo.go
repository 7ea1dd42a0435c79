/*
 * @Description: 车辆仓库的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2025-11-11 11:20:15
 * @LastEditTime: 2026-03-02 17:15:48
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"

	"github.com/behark/autoanikw-sub000/ent"
	"github.com/behark/autoanikw-sub000/ent/vehicle"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
)

type vehicleRepo struct {
	client *ent.Client
}

func NewVehicleRepo(client *ent.Client) repository.VehicleRepository {
	return &vehicleRepo{client: client}
}

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	saved, err := r.client.Vehicle.Create().
		SetMake(v.Make).
		SetModel(v.Model).
		SetYear(v.Year).
		SetPriceCents(v.PriceCents).
		SetMileage(v.Mileage).
		SetFuelType(v.FuelType).
		SetTransmission(v.Transmission).
		SetStatus(string(v.Status)).
		SetFeatured(v.Featured).
		SetDescription(v.Description).
		SetDescriptionHTML(v.DescriptionHTML).
		SetNillableCoverMediaID(v.CoverMediaID).
		Save(ctx)
	if err != nil {
		return err
	}
	v.ID = saved.ID
	v.CreatedAt = saved.CreatedAt
	v.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	row, err := r.client.Vehicle.Query().
		Where(vehicle.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return mapEntVehicle(row), nil
}

func (r *vehicleRepo) List(ctx context.Context, opts repository.VehicleListOptions) (*repository.PageResult[model.Vehicle], error) {
	query := r.client.Vehicle.Query()

	if opts.Status != "" {
		query = query.Where(vehicle.StatusEQ(string(opts.Status)))
	}
	if opts.Make != "" {
		query = query.Where(vehicle.MakeEqualFold(opts.Make))
	}
	if opts.Search != "" {
		query = query.Where(vehicle.Or(
			vehicle.MakeContainsFold(opts.Search),
			vehicle.ModelContainsFold(opts.Search),
		))
	}
	if opts.Featured != nil {
		query = query.Where(vehicle.FeaturedEQ(*opts.Featured))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := query.
		Order(ent.Desc(vehicle.FieldCreatedAt)).
		Offset(opts.Offset()).
		Limit(opts.PageSize).
		All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*model.Vehicle, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEntVehicle(row))
	}
	return &repository.PageResult[model.Vehicle]{
		Items: items,
		Total: int64(total),
	}, nil
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	update := r.client.Vehicle.UpdateOneID(v.ID).
		SetMake(v.Make).
		SetModel(v.Model).
		SetYear(v.Year).
		SetPriceCents(v.PriceCents).
		SetMileage(v.Mileage).
		SetFuelType(v.FuelType).
		SetTransmission(v.Transmission).
		SetStatus(string(v.Status)).
		SetFeatured(v.Featured).
		SetDescription(v.Description).
		SetDescriptionHTML(v.DescriptionHTML)

	if v.CoverMediaID != nil {
		update.SetCoverMediaID(*v.CoverMediaID)
	} else {
		update.ClearCoverMediaID()
	}

	saved, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}
	v.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *vehicleRepo) Delete(ctx context.Context, id uint) error {
	err := r.client.Vehicle.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return err
	}
	return nil
}

func mapEntVehicle(row *ent.Vehicle) *model.Vehicle {
	return &model.Vehicle{
		ID:              row.ID,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		Make:            row.Make,
		Model:           row.Model,
		Year:            row.Year,
		PriceCents:      row.PriceCents,
		Mileage:         row.Mileage,
		FuelType:        row.FuelType,
		Transmission:    row.Transmission,
		Status:          model.VehicleStatus(row.Status),
		Featured:        row.Featured,
		Description:     row.Description,
		DescriptionHTML: row.DescriptionHTML,
		CoverMediaID:    row.CoverMediaID,
	}
}
