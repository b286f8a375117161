package ports

import (
	"context"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// DistrictQuery filters districts. Nil pointers leave the flag unfiltered.
type DistrictQuery struct {
	IsDistrict       *bool
	IsJurisdictional *bool
}

// AuthorityQuery filters authorities.
type AuthorityQuery struct {
	DistrictKey      string // clave of an active district
	MatterKey        string // clave of the matter
	IsJurisdictional *bool
	IsNotary         *bool
}

// TrialTypeQuery filters trial types.
type TrialTypeQuery struct {
	MatterKey string // clave of an active matter
}

// PublicationQuery filters notices, rulings and agreement lists. Dates are YYYY-MM-DD;
// Date wins over the From/To range when set.
type PublicationQuery struct {
	AuthorityKey string
	Date         string
	DateFrom     string
	DateTo       string
}

// JudicialRepository reads the courts catalog and its publications.
// Lists only ever return active records.
type JudicialRepository interface {
	ListDistricts(ctx context.Context, q DistrictQuery, page PageRequest) ([]domain.District, int64, error)
	FindDistrict(ctx context.Context, key string) (domain.Lookup[domain.District], error)
	ListAuthorities(ctx context.Context, q AuthorityQuery, page PageRequest) ([]domain.Authority, int64, error)
	FindAuthority(ctx context.Context, key string) (domain.Lookup[domain.Authority], error)
	ListNotices(ctx context.Context, q PublicationQuery, page PageRequest) ([]domain.Notice, int64, error)
	FindNotice(ctx context.Context, id int64) (domain.Lookup[domain.Notice], error)
	ListRulings(ctx context.Context, q PublicationQuery, page PageRequest) ([]domain.Ruling, int64, error)
	FindRuling(ctx context.Context, id int64) (domain.Lookup[domain.Ruling], error)
	ListAgreementLists(ctx context.Context, q PublicationQuery, page PageRequest) ([]domain.AgreementList, int64, error)
	FindAgreementList(ctx context.Context, id int64) (domain.Lookup[domain.AgreementList], error)
	ListMatters(ctx context.Context, page PageRequest) ([]domain.Matter, int64, error)
	FindMatter(ctx context.Context, key string) (domain.Lookup[domain.Matter], error)
	ListTrialTypes(ctx context.Context, q TrialTypeQuery, page PageRequest) ([]domain.TrialType, int64, error)
	ListMunicipalities(ctx context.Context, page PageRequest) ([]domain.Municipality, int64, error)
	FindMunicipality(ctx context.Context, id int64) (domain.Lookup[domain.Municipality], error)
}

// JudicialService validates caller input before querying the repository.
// Invalid input is reported as a *domain.ParamError.
type JudicialService interface {
	ListDistricts(ctx context.Context, q DistrictQuery, page PageRequest) (Page[domain.District], error)
	GetDistrict(ctx context.Context, key string) (domain.Lookup[domain.District], error)
	ListAuthorities(ctx context.Context, q AuthorityQuery, page PageRequest) (Page[domain.Authority], error)
	GetAuthority(ctx context.Context, key string) (domain.Lookup[domain.Authority], error)
	ListNotices(ctx context.Context, q PublicationQuery, page PageRequest) (Page[domain.Notice], error)
	// GetNotice accepts a decimal id or its encoded form.
	GetNotice(ctx context.Context, id string) (domain.Lookup[domain.Notice], error)
	ListRulings(ctx context.Context, q PublicationQuery, page PageRequest) (Page[domain.Ruling], error)
	GetRuling(ctx context.Context, id string) (domain.Lookup[domain.Ruling], error)
	ListAgreementLists(ctx context.Context, q PublicationQuery, page PageRequest) (Page[domain.AgreementList], error)
	GetAgreementList(ctx context.Context, id string) (domain.Lookup[domain.AgreementList], error)
	ListMatters(ctx context.Context, page PageRequest) (Page[domain.Matter], error)
	GetMatter(ctx context.Context, key string) (domain.Lookup[domain.Matter], error)
	ListTrialTypes(ctx context.Context, q TrialTypeQuery, page PageRequest) (Page[domain.TrialType], error)
	ListMunicipalities(ctx context.Context, page PageRequest) (Page[domain.Municipality], error)
	GetMunicipality(ctx context.Context, id string) (domain.Lookup[domain.Municipality], error)
}
