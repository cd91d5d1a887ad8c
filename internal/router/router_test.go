package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mailmem "my-pets-api/internal/adapters/mail/memory"
	mediamem "my-pets-api/internal/adapters/media/memory"
	"my-pets-api/internal/router"
)

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	token := registerUser(t, ts.URL, "alice@example.com")

	// 1) Crear mascota
	petID := createPet(t, ts.URL, token, map[string]any{
		"name":      "Milo",
		"species":   "DOG",
		"breed":     "mixed",
		"gender":    "male",
		"birthDate": "2020-05-01",
	})

	// 2) Aparece en el listado
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 {
			t.Fatalf("expected 1 pet in list, body=%s", string(body))
		}
	}

	// 3) Detalle arranca con historial vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var detail struct {
			Name           string           `json:"name"`
			Vaccinations   []map[string]any `json:"vaccinations"`
			MedicalHistory []map[string]any `json:"medicalHistory"`
			Dewormings     []map[string]any `json:"dewormings"`
			Attachments    []map[string]any `json:"attachments"`
		}
		if err := json.Unmarshal(body, &detail); err != nil {
			t.Fatalf("unmarshal detail: %v body=%s", err, string(body))
		}
		if detail.Name != "Milo" {
			t.Fatalf("expected name Milo, got %q", detail.Name)
		}
		if detail.Vaccinations == nil || detail.MedicalHistory == nil || detail.Dewormings == nil || detail.Attachments == nil {
			t.Fatalf("expected empty arrays, not null: %s", string(body))
		}
		if len(detail.Vaccinations) != 0 {
			t.Fatalf("expected no vaccinations yet, got %d", len(detail.Vaccinations))
		}
	}

	// 4) Registrar vacuna, desparasitación y evento médico
	{
		st, body := doReq(t, ts.URL, "POST", "/vaccines", token, map[string]any{
			"name":  "Rabia",
			"date":  "2024-03-01",
			"petId": petID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create vaccine, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/dewormings", token, map[string]any{
			"name":  "NexGard",
			"type":  "EXTERNA",
			"date":  "2024-04-01",
			"petId": petID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create deworming, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/medical", token, map[string]any{
			"title":       "Control anual",
			"description": "Todo en orden",
			"petId":       petID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create medical record, got %d body=%s", st, string(body))
		}
	}

	// 5) El detalle los refleja
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var detail struct {
			Vaccinations   []map[string]any `json:"vaccinations"`
			MedicalHistory []map[string]any `json:"medicalHistory"`
			Dewormings     []map[string]any `json:"dewormings"`
		}
		if err := json.Unmarshal(body, &detail); err != nil {
			t.Fatalf("unmarshal detail: %v", err)
		}
		if len(detail.Vaccinations) != 1 || len(detail.Dewormings) != 1 || len(detail.MedicalHistory) != 1 {
			t.Fatalf("expected 1/1/1 records, body=%s", string(body))
		}
	}

	// 6) PUT multipart con coerción de tipos
	{
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("name", "Milo Actualizado")
		_ = mw.WriteField("weight", "12.5")
		_ = mw.WriteField("isCastrated", "true")
		_ = mw.Close()

		req, _ := http.NewRequest("PUT", ts.URL+"/pets/"+petID, &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("put pet: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 update pet, got %d body=%s", resp.StatusCode, string(body))
		}
		var updated struct {
			Name        string   `json:"name"`
			Weight      *float64 `json:"weight"`
			IsCastrated bool     `json:"isCastrated"`
		}
		_ = json.Unmarshal(body, &updated)
		if updated.Name != "Milo Actualizado" || updated.Weight == nil || *updated.Weight != 12.5 || !updated.IsCastrated {
			t.Fatalf("update not applied: %s", string(body))
		}
	}

	// 7) Borrar la mascota borra el historial
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+petID, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete pet, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_OwnershipIsolation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	aliceToken := registerUser(t, ts.URL, "alice@example.com")
	bobToken := registerUser(t, ts.URL, "bob@example.com")

	petID := createPet(t, ts.URL, aliceToken, map[string]any{
		"name":    "Luna",
		"species": "CAT",
	})

	// Bob no puede ver, editar ni borrar la mascota de Alice: 404, nunca 403,
	// para no revelar que existe.
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, bobToken, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 foreign pet get, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, bobToken, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 foreign pet delete, got %d", st)
		}
	}

	// Mascota inexistente responde igual que la ajena
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/00000000-0000-0000-0000-000000000000", bobToken, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown pet, got %d", st)
		}
	}

	// Crear un registro hijo sobre mascota ajena => 403 y no se persiste
	{
		st, _ := doReq(t, ts.URL, "POST", "/vaccines", bobToken, map[string]any{
			"name":  "Rabia",
			"date":  "2024-03-01",
			"petId": petID,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 foreign vaccine create, got %d", st)
		}

		_, body := doReq(t, ts.URL, "GET", "/pets/"+petID, aliceToken, nil)
		var detail struct {
			Vaccinations []map[string]any `json:"vaccinations"`
		}
		_ = json.Unmarshal(body, &detail)
		if len(detail.Vaccinations) != 0 {
			t.Fatalf("foreign create must not persist, body=%s", string(body))
		}
	}

	// Borrar un registro ajeno => 404
	{
		st, body := doReq(t, ts.URL, "POST", "/vaccines", aliceToken, map[string]any{
			"name":  "Triple felina",
			"date":  "2024-05-01",
			"petId": petID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 own vaccine, got %d", st)
		}
		var created struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &created)

		st, _ = doReq(t, ts.URL, "DELETE", "/vaccines/"+created.ID, bobToken, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 foreign vaccine delete, got %d", st)
		}

		// el dueño sí puede
		st, _ = doReq(t, ts.URL, "DELETE", "/vaccines/"+created.ID, aliceToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 own vaccine delete, got %d", st)
		}
	}
}

func TestHTTP_Auth_RegisterAndLogin(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// registro válido
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"name":     "Alice",
			"lastname": "Quiroga",
			"email":    "alice@example.com",
			"password": "secret123",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
	}

	// email repetido => 409, aunque cambie el case
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"name":     "Alice",
			"lastname": "Quiroga",
			"email":    "ALICE@example.com",
			"password": "secret123",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate email, got %d", st)
		}
	}

	// password corta => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"name":     "Bob",
			"lastname": "Paz",
			"email":    "bob@example.com",
			"password": "123",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 short password, got %d", st)
		}
	}

	// login ok
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "alice@example.com",
			"password": "secret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token string `json:"token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" {
			t.Fatalf("login: missing token body=%s", string(body))
		}

		// /auth/me con el token
		st, body = doReq(t, ts.URL, "GET", "/auth/me", resp.Token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
		var me struct {
			Email string `json:"email"`
		}
		_ = json.Unmarshal(body, &me)
		if me.Email != "alice@example.com" {
			t.Fatalf("me: expected alice@example.com, got %q", me.Email)
		}
	}

	// password incorrecta y email desconocido devuelven exactamente lo mismo
	{
		st1, body1 := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})
		st2, body2 := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "nobody@example.com",
			"password": "whatever123",
		})
		if st1 != http.StatusUnauthorized || st2 != http.StatusUnauthorized {
			t.Fatalf("expected 401/401, got %d/%d", st1, st2)
		}
		if string(body1) != string(body2) {
			t.Fatalf("login errors must be indistinguishable: %q vs %q", body1, body2)
		}
	}

	// sin token => 401 en rutas protegidas
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}
}

func TestHTTP_Attachments_UploadAndCleanup(t *testing.T) {
	store := mediamem.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Media: store}))
	defer ts.Close()

	token := registerUser(t, ts.URL, "alice@example.com")
	petID := createPet(t, ts.URL, token, map[string]any{
		"name":    "Rocky",
		"species": "DOG",
	})

	// Subir dos adjuntos por POST /attachments
	att1 := uploadAttachment(t, ts.URL, token, "/attachments", map[string]string{"petId": petID}, "radiografia.pdf")
	_ = uploadAttachment(t, ts.URL, token, "/attachments", map[string]string{"petId": petID}, "analisis.jpg")

	// Y uno más por el path directo /upload
	_ = uploadAttachment(t, ts.URL, token, "/upload?petId="+petID, nil, "receta.png")

	if store.Len() != 3 {
		t.Fatalf("expected 3 stored objects, got %d", store.Len())
	}

	// El detalle de la mascota los lista
	{
		_, body := doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		var detail struct {
			Attachments []map[string]any `json:"attachments"`
		}
		_ = json.Unmarshal(body, &detail)
		if len(detail.Attachments) != 3 {
			t.Fatalf("expected 3 attachments in detail, body=%s", string(body))
		}
	}

	// Borrar un adjunto borra también su objeto
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/attachments/"+att1, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete attachment, got %d", st)
		}
		if store.DeletedCount() != 1 {
			t.Fatalf("expected 1 store delete, got %d", store.DeletedCount())
		}
	}

	// Borrar la mascota intenta borrar TODOS los objetos restantes aunque
	// alguno falle, y el borrado del registro no se bloquea.
	{
		store.FailDeletes = 1
		attempts := store.DeleteAttempts

		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+petID, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete pet despite store failure, got %d body=%s", st, string(body))
		}
		if got := store.DeleteAttempts - attempts; got != 2 {
			t.Fatalf("expected 2 delete attempts, got %d", got)
		}

		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after pet delete, got %d", st)
		}
	}
}

func TestHTTP_Attachments_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{MaxUploadBytes: 1024}))
	defer ts.Close()

	token := registerUser(t, ts.URL, "alice@example.com")
	petID := createPet(t, ts.URL, token, map[string]any{
		"name":    "Toby",
		"species": "DOG",
	})

	// archivo más grande que el límite => 413
	{
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("petId", petID)
		fw, _ := mw.CreateFormFile("file", "grande.bin")
		_, _ = fw.Write(bytes.Repeat([]byte("x"), 4096))
		_ = mw.Close()

		st, body := doRaw(t, ts.URL, "POST", "/attachments", token, mw.FormDataContentType(), &buf)
		if st != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413 oversized upload, got %d body=%s", st, string(body))
		}
	}

	// sin archivo => 400
	{
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("petId", petID)
		_ = mw.Close()

		st, _ := doRaw(t, ts.URL, "POST", "/attachments", token, mw.FormDataContentType(), &buf)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing file, got %d", st)
		}
	}

	// sin petId => 400
	{
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "nota.txt")
		_, _ = fw.Write([]byte("hola"))
		_ = mw.Close()

		st, _ := doRaw(t, ts.URL, "POST", "/attachments", token, mw.FormDataContentType(), &buf)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing petId, got %d", st)
		}
	}

	// body que no es multipart => 400
	{
		st, _ := doRaw(t, ts.URL, "POST", "/attachments", token, "application/json", strings.NewReader(`{}`))
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 non-multipart, got %d", st)
		}
	}

	// adjunto sobre mascota ajena => 403
	{
		bobToken := registerUser(t, ts.URL, "bob@example.com")

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("petId", petID)
		fw, _ := mw.CreateFormFile("file", "nota.txt")
		_, _ = fw.Write([]byte("hola"))
		_ = mw.Close()

		st, _ := doRaw(t, ts.URL, "POST", "/attachments", bobToken, mw.FormDataContentType(), &buf)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 foreign attachment, got %d", st)
		}
	}
}

// Un alta rechazada no deja objetos huérfanos: el objeto ya subido se
// descarta antes de responder el error.
func TestHTTP_Attachments_RejectedUploadIsDiscarded(t *testing.T) {
	store := mediamem.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Media: store}))
	defer ts.Close()

	aliceToken := registerUser(t, ts.URL, "alice@example.com")
	bobToken := registerUser(t, ts.URL, "bob@example.com")
	petID := createPet(t, ts.URL, aliceToken, map[string]any{
		"name":    "Nina",
		"species": "CAT",
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("petId", petID)
	fw, _ := mw.CreateFormFile("file", "nota.txt")
	_, _ = fw.Write([]byte("hola"))
	_ = mw.Close()

	st, _ := doRaw(t, ts.URL, "POST", "/attachments", bobToken, mw.FormDataContentType(), &buf)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 foreign attachment, got %d", st)
	}
	if store.Len() != 0 {
		t.Fatalf("rejected upload must not leave objects, got %d", store.Len())
	}
	if store.DeleteAttempts != 1 {
		t.Fatalf("expected 1 store delete attempt, got %d", store.DeleteAttempts)
	}
}

func TestHTTP_ForgotAndResetPassword(t *testing.T) {
	mailer := mailmem.NewSender()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Mailer:      mailer,
		FrontendURL: "http://localhost:5173",
	}))
	defer ts.Close()

	_ = registerUser(t, ts.URL, "alice@example.com")

	// email desconocido => 200 igual, sin mail (anti-enumeración)
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/forgot-password", "", map[string]any{
			"email": "nobody@example.com",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 forgot unknown email, got %d", st)
		}
		if len(mailer.Sent()) != 0 {
			t.Fatalf("expected no mail for unknown email")
		}
	}

	// email conocido => 200 y llega el mail con el link
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/forgot-password", "", map[string]any{
			"email": "alice@example.com",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 forgot, got %d", st)
		}
	}

	sent := mailer.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 mail sent, got %d", len(sent))
	}
	resetToken := extractResetToken(t, sent[0].HTML)

	// token inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/reset-password", "", map[string]any{
			"token":    "not-a-real-token",
			"password": "newsecret123",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 bad reset token, got %d", st)
		}
	}

	// token válido => 200 y la nueva password sirve para loguear
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/reset-password", "", map[string]any{
			"token":    resetToken,
			"password": "newsecret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reset, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "alice@example.com",
			"password": "newsecret123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login with new password, got %d", st)
		}

		// la vieja dejó de servir
		st, _ = doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "alice@example.com",
			"password": "secret123",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 login with old password, got %d", st)
		}

		// y el token es de un solo uso
		st, _ = doReq(t, ts.URL, "POST", "/auth/reset-password", "", map[string]any{
			"token":    resetToken,
			"password": "anotherpass123",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 reusing reset token, got %d", st)
		}
	}
}

func registerUser(t *testing.T, baseURL, email string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/register", "", map[string]any{
		"name":     "Test",
		"lastname": "User",
		"email":    email,
		"password": "secret123",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("register: missing token body=%s", string(body))
	}
	return resp.Token
}

func createPet(t *testing.T, baseURL, token string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", token, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func uploadAttachment(t *testing.T, baseURL, token, path string, fields map[string]string, filename string) string {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte("contenido de prueba"))
	_ = mw.Close()

	st, body := doRaw(t, baseURL, "POST", path, token, mw.FormDataContentType(), &buf)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 upload, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" || resp.URL == "" {
		t.Fatalf("upload: missing id/url body=%s", string(body))
	}
	return resp.ID
}

// extractResetToken saca el query param token del link en el HTML del mail.
func extractResetToken(t *testing.T, html string) string {
	t.Helper()

	marker := "token="
	i := strings.Index(html, marker)
	if i < 0 {
		t.Fatalf("reset mail without token link: %s", html)
	}
	rest := html[i+len(marker):]
	if j := strings.IndexAny(rest, `"<& `); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	return doRaw(t, baseURL, method, path, token, "application/json", rd)
}

func doRaw(t *testing.T, baseURL, method, path, token, contentType string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
