package entity

import "time"

// Grados académicos aceptados (se manejan como texto: viajan así en
// querystrings y formularios multipart).
var GradosValidos = []string{"7", "8", "9", "10", "11", "12"}

// GradoValido indica si grado es uno de los grados aceptados.
func GradoValido(grado string) bool {
	for _, g := range GradosValidos {
		if g == grado {
			return true
		}
	}
	return false
}

// Archivo es un adjunto binario almacenado inline como base64 dentro de su
// investigación. Size es el largo en bytes del contenido decodificado.
// Inmutable una vez creado; comparte el ciclo de vida de la investigación.
type Archivo struct {
	Base64 string
	Mime   string
	Nombre string // nombre original del archivo subido
	Size   int
}

// Imagen es un Archivo de clase image/* con una descripción opcional.
// El orden dentro de Investigacion.Imagenes es el índice del carrusel y
// nunca se reordena.
type Imagen struct {
	Archivo     Archivo
	Descripcion string
}

// Autor referencia desnormalizada al usuario que publicó la investigación.
type Autor struct {
	UserID string
	Nombre string
}

// Investigacion es el registro publicado: metadatos + PDF embebido +
// imágenes embebidas. El agregado de puntaje se guarda como suma y conteo;
// PromedioPuntaje se deriva de ellos (0 si no hay comentarios).
type Investigacion struct {
	ID              string
	Titulo          string
	Area            string
	GradoAcademico  string
	Descripcion     string // máx 500
	Conclusiones    string // máx 500
	Recomendaciones string // máx 500
	PDF             Archivo
	Imagenes        []Imagen
	Autor           Autor
	PromedioPuntaje float64
	PuntajeSuma     int64
	PuntajeTotal    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
