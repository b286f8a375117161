package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/core/safe"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

// JudicialService serves the courts catalog: districts, authorities, matters,
// trial types and municipalities, plus the notices, rulings and agreement
// lists authorities publish.
type JudicialService struct {
	repo  ports.JudicialRepository
	codec ports.IDCodec
	log   zerolog.Logger
}

func NewJudicialService(repo ports.JudicialRepository, codec ports.IDCodec, log zerolog.Logger) *JudicialService {
	return &JudicialService{
		repo:  repo,
		codec: codec,
		log:   logger.Component(log, "judicial"),
	}
}

func (s *JudicialService) ListDistricts(ctx context.Context, q ports.DistrictQuery, page ports.PageRequest) (ports.Page[domain.District], error) {
	items, total, err := s.repo.ListDistricts(ctx, q, page)
	return pageOf(items, total, err, "districts")
}

func (s *JudicialService) GetDistrict(ctx context.Context, key string) (domain.Lookup[domain.District], error) {
	clave, err := safe.Clave(key)
	if err != nil {
		return domain.Lookup[domain.District]{}, domain.InvalidParam(districtRef.invalid)
	}
	return s.repo.FindDistrict(ctx, clave)
}

func (s *JudicialService) ListAuthorities(ctx context.Context, q ports.AuthorityQuery, page ports.PageRequest) (ports.Page[domain.Authority], error) {
	districtKey, err := resolveReference(ctx, q.DistrictKey, districtRef, s.repo.FindDistrict)
	if err != nil {
		return ports.Page[domain.Authority]{}, err
	}
	q.DistrictKey = districtKey

	matterKey, err := resolveReference(ctx, q.MatterKey, matterRef, s.repo.FindMatter)
	if err != nil {
		return ports.Page[domain.Authority]{}, err
	}
	q.MatterKey = matterKey

	items, total, err := s.repo.ListAuthorities(ctx, q, page)
	return pageOf(items, total, err, "authorities")
}

func (s *JudicialService) GetAuthority(ctx context.Context, key string) (domain.Lookup[domain.Authority], error) {
	clave, err := safe.Clave(key)
	if err != nil {
		return domain.Lookup[domain.Authority]{}, domain.InvalidParam(authorityRef.invalid)
	}
	return s.repo.FindAuthority(ctx, clave)
}

func (s *JudicialService) ListNotices(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.Notice], error) {
	q, err := s.normalizePublicationQuery(ctx, q)
	if err != nil {
		return ports.Page[domain.Notice]{}, err
	}
	items, total, err := s.repo.ListNotices(ctx, q, page)
	return pageOf(items, total, err, "notices")
}

func (s *JudicialService) GetNotice(ctx context.Context, id string) (domain.Lookup[domain.Notice], error) {
	recordID, err := parseRecordID(s.codec, id, "Es inválido el ID del edicto")
	if err != nil {
		return domain.Lookup[domain.Notice]{}, err
	}
	return s.repo.FindNotice(ctx, recordID)
}

func (s *JudicialService) ListRulings(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.Ruling], error) {
	q, err := s.normalizePublicationQuery(ctx, q)
	if err != nil {
		return ports.Page[domain.Ruling]{}, err
	}
	items, total, err := s.repo.ListRulings(ctx, q, page)
	return pageOf(items, total, err, "rulings")
}

func (s *JudicialService) GetRuling(ctx context.Context, id string) (domain.Lookup[domain.Ruling], error) {
	recordID, err := parseRecordID(s.codec, id, "Es inválido el ID de la sentencia")
	if err != nil {
		return domain.Lookup[domain.Ruling]{}, err
	}
	return s.repo.FindRuling(ctx, recordID)
}

func (s *JudicialService) ListAgreementLists(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.AgreementList], error) {
	q, err := s.normalizePublicationQuery(ctx, q)
	if err != nil {
		return ports.Page[domain.AgreementList]{}, err
	}
	items, total, err := s.repo.ListAgreementLists(ctx, q, page)
	return pageOf(items, total, err, "agreement lists")
}

func (s *JudicialService) GetAgreementList(ctx context.Context, id string) (domain.Lookup[domain.AgreementList], error) {
	recordID, err := parseRecordID(s.codec, id, "Es inválido el ID de la lista de acuerdos")
	if err != nil {
		return domain.Lookup[domain.AgreementList]{}, err
	}
	return s.repo.FindAgreementList(ctx, recordID)
}

func (s *JudicialService) ListMatters(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Matter], error) {
	items, total, err := s.repo.ListMatters(ctx, page)
	return pageOf(items, total, err, "matters")
}

func (s *JudicialService) GetMatter(ctx context.Context, key string) (domain.Lookup[domain.Matter], error) {
	clave, err := safe.Clave(key)
	if err != nil {
		return domain.Lookup[domain.Matter]{}, domain.InvalidParam(matterRef.invalid)
	}
	return s.repo.FindMatter(ctx, clave)
}

// ListTrialTypes lists trial types, optionally only those of one active
// matter.
func (s *JudicialService) ListTrialTypes(ctx context.Context, q ports.TrialTypeQuery, page ports.PageRequest) (ports.Page[domain.TrialType], error) {
	matterKey, err := resolveReference(ctx, q.MatterKey, matterRef, s.repo.FindMatter)
	if err != nil {
		return ports.Page[domain.TrialType]{}, err
	}
	q.MatterKey = matterKey

	items, total, err := s.repo.ListTrialTypes(ctx, q, page)
	return pageOf(items, total, err, "trial types")
}

func (s *JudicialService) ListMunicipalities(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Municipality], error) {
	items, total, err := s.repo.ListMunicipalities(ctx, page)
	return pageOf(items, total, err, "municipalities")
}

// GetMunicipality looks a municipality up by its numeric id.
func (s *JudicialService) GetMunicipality(ctx context.Context, id string) (domain.Lookup[domain.Municipality], error) {
	recordID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || recordID <= 0 {
		return domain.Lookup[domain.Municipality]{}, domain.InvalidParam("Es inválido el ID del municipio")
	}
	return s.repo.FindMunicipality(ctx, recordID)
}

// normalizePublicationQuery resolves the authority filter and validates the
// dates. A single date replaces any range.
func (s *JudicialService) normalizePublicationQuery(ctx context.Context, q ports.PublicationQuery) (ports.PublicationQuery, error) {
	authorityKey, err := resolveReference(ctx, q.AuthorityKey, authorityRef, s.repo.FindAuthority)
	if err != nil {
		return q, err
	}
	q.AuthorityKey = authorityKey

	for _, field := range []*string{&q.Date, &q.DateFrom, &q.DateTo} {
		if *field == "" {
			continue
		}
		d, err := safe.Date(*field)
		if err != nil {
			return q, domain.InvalidParam(fmt.Sprintf("Es inválida la fecha %q", *field))
		}
		*field = d
	}

	if q.Date != "" {
		q.DateFrom, q.DateTo = "", ""
	}
	if q.DateFrom != "" && q.DateTo != "" && q.DateFrom > q.DateTo {
		return q, domain.InvalidParam("El rango de fechas es inválido")
	}
	return q, nil
}
