package domain

// WebBranch groups web pages under a section of the public site.
type WebBranch struct {
	ID     int64  `json:"-" bson:"_id"`
	Key    string `json:"clave" bson:"clave"`
	Name   string `json:"nombre" bson:"nombre"`
	Status Status `json:"-" bson:"estatus"`
}

func (b WebBranch) RecordStatus() Status { return b.Status }

// WebPage is a page of the public site. Content is only loaded for detail
// lookups.
type WebPage struct {
	ID           int64  `json:"-" bson:"_id"`
	Key          string `json:"clave" bson:"clave"`
	BranchKey    string `json:"web_rama_clave" bson:"web_rama_clave"`
	BranchName   string `json:"web_rama_nombre" bson:"web_rama_nombre"`
	Title        string `json:"titulo" bson:"titulo"`
	Summary      string `json:"resumen" bson:"resumen"`
	Path         string `json:"ruta" bson:"ruta"`
	ModifiedDate string `json:"fecha_modificacion" bson:"fecha_modificacion"`
	Owner        string `json:"responsable" bson:"responsable"`
	Tags         string `json:"etiquetas" bson:"etiquetas"`
	PreviewImage string `json:"vista_previa" bson:"vista_previa"`
	State        string `json:"estado" bson:"estado"`
	Content      string `json:"contenido,omitempty" bson:"contenido,omitempty"`
	Status       Status `json:"-" bson:"estatus"`
}

func (p WebPage) RecordStatus() Status { return p.Status }
