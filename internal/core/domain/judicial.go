package domain

// District is a judicial district.
type District struct {
	ID                 int64  `json:"-" bson:"_id"`
	Key                string `json:"clave" bson:"clave"`
	Name               string `json:"nombre" bson:"nombre"`
	ShortName          string `json:"nombre_corto" bson:"nombre_corto"`
	IsJudicialDistrict bool   `json:"es_distrito_judicial" bson:"es_distrito_judicial"`
	IsDistrict         bool   `json:"es_distrito" bson:"es_distrito"`
	IsJurisdictional   bool   `json:"es_jurisdiccional" bson:"es_jurisdiccional"`
	Status             Status `json:"-" bson:"estatus"`
}

func (d District) RecordStatus() Status { return d.Status }

// Authority is a court, office or notary. District and matter data are
// denormalized onto the document.
type Authority struct {
	ID                     int64  `json:"-" bson:"_id"`
	Key                    string `json:"clave" bson:"clave"`
	DistrictKey            string `json:"distrito_clave" bson:"distrito_clave"`
	DistrictName           string `json:"distrito_nombre" bson:"distrito_nombre"`
	DistrictShortName      string `json:"distrito_nombre_corto" bson:"distrito_nombre_corto"`
	MatterKey              string `json:"materia_clave" bson:"materia_clave"`
	MatterName             string `json:"materia_nombre" bson:"materia_nombre"`
	Description            string `json:"descripcion" bson:"descripcion"`
	ShortDescription       string `json:"descripcion_corta" bson:"descripcion_corta"`
	IsExtinct              bool   `json:"es_extinto" bson:"es_extinto"`
	IsCemasc               bool   `json:"es_cemasc" bson:"es_cemasc"`
	IsDefensoria           bool   `json:"es_defensoria" bson:"es_defensoria"`
	IsJurisdictional       bool   `json:"es_jurisdiccional" bson:"es_jurisdiccional"`
	IsNotary               bool   `json:"es_notaria" bson:"es_notaria"`
	IsSpecializedBody      bool   `json:"es_organo_especializado" bson:"es_organo_especializado"`
	JurisdictionalBody     string `json:"organo_jurisdiccional" bson:"organo_jurisdiccional"`
	NoticesDirectory       string `json:"directorio_edictos" bson:"directorio_edictos"`
	AgreementListDirectory string `json:"directorio_listas_de_acuerdos" bson:"directorio_listas_de_acuerdos"`
	RulingsDirectory       string `json:"directorio_sentencias" bson:"directorio_sentencias"`
	Status                 Status `json:"-" bson:"estatus"`
}

func (a Authority) RecordStatus() Status { return a.Status }

// Publication holds the fields shared by documents an authority publishes.
type Publication struct {
	ID                        int64  `json:"id" bson:"_id"`
	DistrictKey               string `json:"distrito_clave" bson:"distrito_clave"`
	DistrictName              string `json:"distrito_nombre" bson:"distrito_nombre"`
	DistrictShortName         string `json:"distrito_nombre_corto" bson:"distrito_nombre_corto"`
	AuthorityKey              string `json:"autoridad_clave" bson:"autoridad_clave"`
	AuthorityDescription      string `json:"autoridad_descripcion" bson:"autoridad_descripcion"`
	AuthorityShortDescription string `json:"autoridad_descripcion_corta" bson:"autoridad_descripcion_corta"`
	Date                      string `json:"fecha" bson:"fecha"`
	Description               string `json:"descripcion" bson:"descripcion"`
	File                      string `json:"archivo" bson:"archivo"`
	URL                       string `json:"url" bson:"url"`
	Status                    Status `json:"-" bson:"estatus"`
}

// Notice is an edict published by an authority (edicto).
type Notice struct {
	Publication          `bson:",inline"`
	Docket               string `json:"expediente" bson:"expediente"`
	PublicationNumbers   string `json:"numero_publicacion" bson:"numero_publicacion"`
	IsAbsenceDeclaration bool   `json:"es_declaracion_de_ausencia" bson:"es_declaracion_de_ausencia"`
}

func (n Notice) RecordStatus() Status { return n.Status }

// Ruling is a published judgment (sentencia).
type Ruling struct {
	Publication          `bson:",inline"`
	Docket               string `json:"expediente" bson:"expediente"`
	MatterKey            string `json:"materia_clave" bson:"materia_clave"`
	MatterName           string `json:"materia_nombre" bson:"materia_nombre"`
	TrialTypeID          int64  `json:"materia_tipo_juicio_id" bson:"materia_tipo_juicio_id"`
	TrialTypeDescription string `json:"materia_tipo_juicio_descripcion" bson:"materia_tipo_juicio_descripcion"`
	RulingNumber         string `json:"sentencia" bson:"sentencia"`
	RulingDate           string `json:"sentencia_fecha" bson:"sentencia_fecha"`
	HasGenderPerspective bool   `json:"es_perspectiva_genero" bson:"es_perspectiva_genero"`
}

func (r Ruling) RecordStatus() Status { return r.Status }

// AgreementList is the daily list of agreements an authority publishes
// (lista de acuerdos).
type AgreementList struct {
	Publication `bson:",inline"`
}

func (a AgreementList) RecordStatus() Status { return a.Status }

// Matter is a branch of law (materia) authorities and rulings belong to.
type Matter struct {
	ID          int64  `json:"-" bson:"_id"`
	Key         string `json:"clave" bson:"clave"`
	Name        string `json:"nombre" bson:"nombre"`
	Description string `json:"descripcion" bson:"descripcion"`
	InRulings   bool   `json:"en_sentencias" bson:"en_sentencias"`
	Status      Status `json:"-" bson:"estatus"`
}

func (m Matter) RecordStatus() Status { return m.Status }

// TrialType is a kind of trial within a matter (materia tipo de juicio).
type TrialType struct {
	ID          int64  `json:"id" bson:"_id"`
	MatterKey   string `json:"materia_clave" bson:"materia_clave"`
	MatterName  string `json:"materia_nombre" bson:"materia_nombre"`
	Description string `json:"descripcion" bson:"descripcion"`
	Status      Status `json:"-" bson:"estatus"`
}

func (t TrialType) RecordStatus() Status { return t.Status }

// Municipality of the state.
type Municipality struct {
	ID     int64  `json:"-" bson:"_id"`
	Key    string `json:"clave" bson:"clave"`
	Name   string `json:"nombre" bson:"nombre"`
	Status Status `json:"-" bson:"estatus"`
}

func (m Municipality) RecordStatus() Status { return m.Status }
