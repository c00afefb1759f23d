// Package section provides the section property formulas shared by the
// capacity calculators. Dimensions are in mm, moduli in mm^3, second
// moments in mm^4.
package section

// PlasticModulusI returns the plastic section modulus of a symmetric
// I-section: flange contribution plus web contribution about the
// equal-area axis.
func PlasticModulusI(flangeWidthMM, flangeThicknessMM, webThicknessMM, depthMM float64) float64 {
	flange := flangeWidthMM * flangeThicknessMM * (depthMM - flangeThicknessMM)
	webDepth := depthMM - 2*flangeThicknessMM
	web := webThicknessMM * webDepth * webDepth / 4.0
	return flange + web
}

// RectangleZ returns the elastic section modulus b*h^2/6 of a rectangle.
func RectangleZ(breadthMM, depthMM float64) float64 {
	return breadthMM * depthMM * depthMM / 6.0
}

// RectangleI returns the second moment of area b*h^3/12 of a rectangle.
func RectangleI(breadthMM, depthMM float64) float64 {
	return breadthMM * depthMM * depthMM * depthMM / 12.0
}

// WebShearArea returns the shear area of an I-section taken over the
// full depth of the web plate.
func WebShearArea(webThicknessMM, depthMM float64) float64 {
	return webThicknessMM * depthMM
}
