package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

const (
	collectionDistricts      = "distritos"
	collectionAuthorities    = "autoridades"
	collectionNotices        = "edictos"
	collectionRulings        = "sentencias"
	collectionAgreementLists = "listas_de_acuerdos"
	collectionMatters        = "materias"
	collectionTrialTypes     = "materias_tipos_juicios"
	collectionMunicipalities = "municipios"
)

type JudicialRepository struct {
	districts      *mongo.Collection
	authorities    *mongo.Collection
	notices        *mongo.Collection
	rulings        *mongo.Collection
	agreementLists *mongo.Collection
	matters        *mongo.Collection
	trialTypes     *mongo.Collection
	municipalities *mongo.Collection
}

func NewJudicialRepository(db *mongo.Database) *JudicialRepository {
	return &JudicialRepository{
		districts:      db.Collection(collectionDistricts),
		authorities:    db.Collection(collectionAuthorities),
		notices:        db.Collection(collectionNotices),
		rulings:        db.Collection(collectionRulings),
		agreementLists: db.Collection(collectionAgreementLists),
		matters:        db.Collection(collectionMatters),
		trialTypes:     db.Collection(collectionTrialTypes),
		municipalities: db.Collection(collectionMunicipalities),
	}
}

var newestFirst = bson.D{{Key: "_id", Value: -1}}

func (r *JudicialRepository) ListDistricts(ctx context.Context, q ports.DistrictQuery, page ports.PageRequest) ([]domain.District, int64, error) {
	filter := activeFilter()
	setFlag(filter, "es_distrito", q.IsDistrict)
	setFlag(filter, "es_jurisdiccional", q.IsJurisdictional)
	return findPage[domain.District](ctx, r.districts, filter, bson.D{{Key: "clave", Value: 1}}, page, nil)
}

func (r *JudicialRepository) FindDistrict(ctx context.Context, key string) (domain.Lookup[domain.District], error) {
	return lookup[domain.District](ctx, r.districts, bson.M{"clave": key})
}

func (r *JudicialRepository) ListAuthorities(ctx context.Context, q ports.AuthorityQuery, page ports.PageRequest) ([]domain.Authority, int64, error) {
	filter := activeFilter()
	setString(filter, "distrito_clave", q.DistrictKey)
	setString(filter, "materia_clave", q.MatterKey)
	setFlag(filter, "es_jurisdiccional", q.IsJurisdictional)
	setFlag(filter, "es_notaria", q.IsNotary)
	return findPage[domain.Authority](ctx, r.authorities, filter, bson.D{{Key: "clave", Value: 1}}, page, nil)
}

func (r *JudicialRepository) FindAuthority(ctx context.Context, key string) (domain.Lookup[domain.Authority], error) {
	return lookup[domain.Authority](ctx, r.authorities, bson.M{"clave": key})
}

func (r *JudicialRepository) ListNotices(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) ([]domain.Notice, int64, error) {
	return findPage[domain.Notice](ctx, r.notices, publicationFilter(q), newestFirst, page, nil)
}

func (r *JudicialRepository) FindNotice(ctx context.Context, id int64) (domain.Lookup[domain.Notice], error) {
	return lookup[domain.Notice](ctx, r.notices, bson.M{"_id": id})
}

func (r *JudicialRepository) ListRulings(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) ([]domain.Ruling, int64, error) {
	return findPage[domain.Ruling](ctx, r.rulings, publicationFilter(q), newestFirst, page, nil)
}

func (r *JudicialRepository) FindRuling(ctx context.Context, id int64) (domain.Lookup[domain.Ruling], error) {
	return lookup[domain.Ruling](ctx, r.rulings, bson.M{"_id": id})
}

func (r *JudicialRepository) ListAgreementLists(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) ([]domain.AgreementList, int64, error) {
	return findPage[domain.AgreementList](ctx, r.agreementLists, publicationFilter(q), newestFirst, page, nil)
}

func (r *JudicialRepository) FindAgreementList(ctx context.Context, id int64) (domain.Lookup[domain.AgreementList], error) {
	return lookup[domain.AgreementList](ctx, r.agreementLists, bson.M{"_id": id})
}

func (r *JudicialRepository) ListMatters(ctx context.Context, page ports.PageRequest) ([]domain.Matter, int64, error) {
	return findPage[domain.Matter](ctx, r.matters, activeFilter(), bson.D{{Key: "nombre", Value: 1}}, page, nil)
}

func (r *JudicialRepository) FindMatter(ctx context.Context, key string) (domain.Lookup[domain.Matter], error) {
	return lookup[domain.Matter](ctx, r.matters, bson.M{"clave": key})
}

func (r *JudicialRepository) ListTrialTypes(ctx context.Context, q ports.TrialTypeQuery, page ports.PageRequest) ([]domain.TrialType, int64, error) {
	filter := activeFilter()
	setString(filter, "materia_clave", q.MatterKey)
	return findPage[domain.TrialType](ctx, r.trialTypes, filter, bson.D{{Key: "descripcion", Value: 1}}, page, nil)
}

func (r *JudicialRepository) ListMunicipalities(ctx context.Context, page ports.PageRequest) ([]domain.Municipality, int64, error) {
	return findPage[domain.Municipality](ctx, r.municipalities, activeFilter(), bson.D{{Key: "clave", Value: 1}}, page, nil)
}

func (r *JudicialRepository) FindMunicipality(ctx context.Context, id int64) (domain.Lookup[domain.Municipality], error) {
	return lookup[domain.Municipality](ctx, r.municipalities, bson.M{"_id": id})
}

func publicationFilter(q ports.PublicationQuery) bson.M {
	filter := activeFilter()
	setString(filter, "autoridad_clave", q.AuthorityKey)
	setDateRange(filter, "fecha", q.Date, q.DateFrom, q.DateTo)
	return filter
}

// EnsureIndexes creates the clave and publication indexes.
func (r *JudicialRepository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	if err := createIndexes(ctx, r.districts, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
	}); err != nil {
		return err
	}
	if err := createIndexes(ctx, r.authorities, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "distrito_clave", Value: 1}, {Key: "estatus", Value: 1}}},
	}); err != nil {
		return err
	}
	publications := []mongo.IndexModel{
		{Keys: bson.D{{Key: "autoridad_clave", Value: 1}, {Key: "fecha", Value: -1}}},
		{Keys: bson.D{{Key: "estatus", Value: 1}, {Key: "_id", Value: -1}}},
	}
	for _, col := range []*mongo.Collection{r.notices, r.rulings, r.agreementLists} {
		if err := createIndexes(ctx, col, publications); err != nil {
			return err
		}
	}
	if err := createIndexes(ctx, r.matters, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
	}); err != nil {
		return err
	}
	if err := createIndexes(ctx, r.trialTypes, []mongo.IndexModel{
		{Keys: bson.D{{Key: "materia_clave", Value: 1}, {Key: "estatus", Value: 1}}},
	}); err != nil {
		return err
	}
	return createIndexes(ctx, r.municipalities, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
	})
}
