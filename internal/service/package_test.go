package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"silwer/internal/domain"
)

type fakePackageRepo struct {
	packages []domain.Package
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg domain.Package) error {
	f.packages = append(f.packages, pkg)
	return nil
}

func (f *fakePackageRepo) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	for i := range f.packages {
		if f.packages[i].ID == id {
			return &f.packages[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePackageRepo) Update(ctx context.Context, pkg domain.Package) error {
	for i := range f.packages {
		if f.packages[i].ID == pkg.ID {
			f.packages[i] = pkg
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePackageRepo) Delete(ctx context.Context, id string) error {
	for i := range f.packages {
		if f.packages[i].ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePackageRepo) List(ctx context.Context, filter domain.PackageFilter) ([]domain.Package, error) {
	var out []domain.Package
	for _, pkg := range f.packages {
		if filter.SessionType != nil && pkg.SessionType != *filter.SessionType {
			continue
		}
		if filter.ActiveOnly && !pkg.Active {
			continue
		}
		out = append(out, pkg)
	}
	return out, nil
}

func TestEnsureDefaultsSeedsEmptyTable(t *testing.T) {
	repo := &fakePackageRepo{}
	svc := NewPackageService(repo, zap.NewNop())

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if len(repo.packages) != len(domain.DefaultPackages()) {
		t.Fatalf("пакетов после посева = %d, want %d", len(repo.packages), len(domain.DefaultPackages()))
	}
}

func TestEnsureDefaultsKeepsExisting(t *testing.T) {
	repo := &fakePackageRepo{packages: []domain.Package{
		{ID: "custom", Name: "Custom", SessionType: "studio", Active: true},
	}}
	svc := NewPackageService(repo, zap.NewNop())

	if err := svc.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if len(repo.packages) != 1 {
		t.Fatalf("непустая таблица не должна перезаписываться, пакетов = %d", len(repo.packages))
	}
}
