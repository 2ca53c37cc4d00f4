package repository

import (
	"context"
	"errors"
	"time"

	"notaria_backoffice/internal/domain/entities"
	"notaria_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEscriturasTableName = "escrituras"
	folioIndexName             = "folio_interno-index"
)

type personaItem struct {
	ID       string `dynamodbav:"id"`
	Nombre   string `dynamodbav:"nombre"`
	RolLabel string `dynamodbav:"rol_label"`
	Telefono string `dynamodbav:"telefono"`
	Side     string `dynamodbav:"side"`
}

type adjuntoItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Size        int64  `dynamodbav:"size"`
	ContentType string `dynamodbav:"content_type"`
	UploadedAt  string `dynamodbav:"uploaded_at"`
	Status      string `dynamodbav:"status"`
}

type bitacoraItem struct {
	ID     string `dynamodbav:"id"`
	At     string `dynamodbav:"at"`
	User   string `dynamodbav:"user"`
	Action string `dynamodbav:"action"`
	Detail string `dynamodbav:"detail"`
}

// All monetary fields are stored as decimal strings so values round-trip
// without binary-float drift.
type presupuestoItem struct {
	ValorBase            string `dynamodbav:"valor_base"`
	Traslado             string `dynamodbav:"traslado"`
	DerechoRegistro      string `dynamodbav:"derecho_registro"`
	CertificadoCatastral string `dynamodbav:"certificado_catastral"`
	ConstanciasAdeudo    string `dynamodbav:"constancias_adeudo"`
	Subtotal             string `dynamodbav:"subtotal"`
	Honorarios           string `dynamodbav:"honorarios"`
	ISR                  string `dynamodbav:"isr"`
	Total                string `dynamodbav:"total"`
}

type escrituraItem struct {
	ID               string          `dynamodbav:"id"`
	NumeroEscritura  string          `dynamodbav:"numero_escritura"`
	FolioInterno     string          `dynamodbav:"folio_interno"`
	Tipo             string          `dynamodbav:"tipo"`
	Estatus          string          `dynamodbav:"estatus"`
	FechaCreacion    string          `dynamodbav:"fecha_creacion"`
	FechaFirma       string          `dynamodbav:"fecha_firma,omitempty"`
	Notas            string          `dynamodbav:"notas,omitempty"`
	Participantes    []personaItem   `dynamodbav:"participantes"`
	Presupuesto      presupuestoItem `dynamodbav:"presupuesto"`
	Adjuntos         []adjuntoItem   `dynamodbav:"adjuntos,omitempty"`
	Bitacora         []bitacoraItem  `dynamodbav:"bitacora"`
	ReciboEnviado    bool            `dynamodbav:"recibo_enviado"`
	FechaUltimoEnvio string          `dynamodbav:"fecha_ultimo_envio,omitempty"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// EscrituraDynamoRepository persists the Escritura aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI folio_interno-index: folio_interno (string) — folio uniqueness lookups
//
// Saves write the whole aggregate; DynamoDB's per-item atomicity is what
// serializes two competing writers (last writer wins at the item level,
// both audit appends ride along with their own write).

type EscrituraDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEscrituraRepository = (*EscrituraDynamoRepository)(nil)

func NewEscrituraDynamoRepository(ddb *dynamodb.Client) *EscrituraDynamoRepository {
	return &EscrituraDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESCRITURAS_TABLE", defaultEscriturasTableName),
	}
}

func (r *EscrituraDynamoRepository) Create(ctx context.Context, e entities.Escritura) (entities.Escritura, error) {
	av, err := attributevalue.MarshalMap(toEscrituraItem(e))
	if err != nil {
		return entities.Escritura{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Escritura{}, err
	}
	return e, nil
}

func (r *EscrituraDynamoRepository) GetByID(ctx context.Context, id string) (entities.Escritura, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Escritura{}, err
	}
	if len(out.Item) == 0 {
		return entities.Escritura{}, nil
	}

	var it escrituraItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Escritura{}, err
	}
	return fromEscrituraItem(it)
}

func (r *EscrituraDynamoRepository) List(ctx context.Context, filter entities.EscrituraFilter) ([]entities.Escritura, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	exprParts := []string{}
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Estatus != "" {
		exprParts = append(exprParts, "#estatus = :estatus")
		names["#estatus"] = "estatus"
		values[":estatus"] = &types.AttributeValueMemberS{Value: string(filter.Estatus)}
	}
	if filter.Tipo != "" {
		exprParts = append(exprParts, "#tipo = :tipo")
		names["#tipo"] = "tipo"
		values[":tipo"] = &types.AttributeValueMemberS{Value: string(filter.Tipo)}
	}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(joinAnd(exprParts))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	escrituras := []entities.Escritura{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []escrituraItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			e, err := fromEscrituraItem(it)
			if err != nil {
				return nil, err
			}
			escrituras = append(escrituras, e)
		}
	}
	return escrituras, nil
}

func (r *EscrituraDynamoRepository) Update(ctx context.Context, e entities.Escritura) (entities.Escritura, error) {
	av, err := attributevalue.MarshalMap(toEscrituraItem(e))
	if err != nil {
		return entities.Escritura{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Escritura{}, nil
		}
		return entities.Escritura{}, err
	}
	return e, nil
}

func (r *EscrituraDynamoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EscrituraDynamoRepository) ExistsByFolio(ctx context.Context, folioInterno string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(folioIndexName),
		KeyConditionExpression: aws.String("#folio = :folio"),
		ExpressionAttributeNames: map[string]string{
			"#folio": "folio_interno",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":folio": &types.AttributeValueMemberS{Value: folioInterno},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func toEscrituraItem(e entities.Escritura) escrituraItem {
	it := escrituraItem{
		ID:              e.ID,
		NumeroEscritura: e.NumeroEscritura,
		FolioInterno:    e.FolioInterno,
		Tipo:            string(e.Tipo),
		Estatus:         string(e.Estatus),
		FechaCreacion:   e.FechaCreacion.UTC().Format(time.RFC3339Nano),
		Notas:           e.Notas,
		ReciboEnviado:   e.ReciboEnviado,
		UpdatedAt:       e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.FechaFirma != nil {
		it.FechaFirma = e.FechaFirma.UTC().Format(time.RFC3339Nano)
	}
	if e.FechaUltimoEnvio != nil {
		it.FechaUltimoEnvio = e.FechaUltimoEnvio.UTC().Format(time.RFC3339Nano)
	}

	it.Participantes = make([]personaItem, 0, len(e.Participantes))
	for _, p := range e.Participantes {
		it.Participantes = append(it.Participantes, personaItem{
			ID:       p.ID,
			Nombre:   p.Nombre,
			RolLabel: p.RolLabel,
			Telefono: p.Telefono,
			Side:     string(p.Side),
		})
	}

	it.Adjuntos = make([]adjuntoItem, 0, len(e.Adjuntos))
	for _, a := range e.Adjuntos {
		it.Adjuntos = append(it.Adjuntos, adjuntoItem{
			ID:          a.ID,
			Name:        a.Name,
			Size:        a.Size,
			ContentType: a.ContentType,
			UploadedAt:  a.UploadedAt.UTC().Format(time.RFC3339Nano),
			Status:      string(a.Status),
		})
	}

	it.Bitacora = make([]bitacoraItem, 0, len(e.Bitacora))
	for _, b := range e.Bitacora {
		it.Bitacora = append(it.Bitacora, bitacoraItem{
			ID:     b.ID,
			At:     b.At.UTC().Format(time.RFC3339Nano),
			User:   b.User,
			Action: b.Action,
			Detail: b.Detail,
		})
	}

	it.Presupuesto = presupuestoItem{
		ValorBase:            e.Presupuesto.ValorBase.String(),
		Traslado:             e.Presupuesto.Traslado.String(),
		DerechoRegistro:      e.Presupuesto.DerechoRegistro.String(),
		CertificadoCatastral: e.Presupuesto.CertificadoCatastral.String(),
		ConstanciasAdeudo:    e.Presupuesto.ConstanciasAdeudo.String(),
		Subtotal:             e.Presupuesto.Subtotal.String(),
		Honorarios:           e.Presupuesto.Honorarios.String(),
		ISR:                  e.Presupuesto.ISR.String(),
		Total:                e.Presupuesto.Total.String(),
	}
	return it
}

func fromEscrituraItem(it escrituraItem) (entities.Escritura, error) {
	presupuesto, err := fromPresupuestoItem(it.Presupuesto)
	if err != nil {
		return entities.Escritura{}, err
	}

	e := entities.Escritura{
		ID:              it.ID,
		NumeroEscritura: it.NumeroEscritura,
		FolioInterno:    it.FolioInterno,
		Tipo:            entities.TipoEscritura(it.Tipo),
		Estatus:         entities.EstatusEscritura(it.Estatus),
		Notas:           it.Notas,
		Presupuesto:     presupuesto,
		ReciboEnviado:   it.ReciboEnviado,
	}
	if e.FechaCreacion, err = parseTimestamp(it.FechaCreacion); err != nil {
		return entities.Escritura{}, err
	}
	if e.UpdatedAt, err = parseTimestamp(it.UpdatedAt); err != nil {
		return entities.Escritura{}, err
	}
	if it.FechaFirma != "" {
		t, err := parseTimestamp(it.FechaFirma)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.FechaFirma = &t
	}
	if it.FechaUltimoEnvio != "" {
		t, err := parseTimestamp(it.FechaUltimoEnvio)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.FechaUltimoEnvio = &t
	}

	e.Participantes = make([]entities.Persona, 0, len(it.Participantes))
	for _, p := range it.Participantes {
		e.Participantes = append(e.Participantes, entities.Persona{
			ID:       p.ID,
			Nombre:   p.Nombre,
			RolLabel: p.RolLabel,
			Telefono: p.Telefono,
			Side:     entities.Side(p.Side),
		})
	}

	e.Adjuntos = make([]entities.Adjunto, 0, len(it.Adjuntos))
	for _, a := range it.Adjuntos {
		uploadedAt, err := parseTimestamp(a.UploadedAt)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.Adjuntos = append(e.Adjuntos, entities.Adjunto{
			ID:          a.ID,
			Name:        a.Name,
			Size:        a.Size,
			ContentType: a.ContentType,
			UploadedAt:  uploadedAt,
			Status:      entities.AdjuntoStatus(a.Status),
		})
	}

	e.Bitacora = make([]entities.BitacoraEntry, 0, len(it.Bitacora))
	for _, b := range it.Bitacora {
		at, err := parseTimestamp(b.At)
		if err != nil {
			return entities.Escritura{}, err
		}
		e.Bitacora = append(e.Bitacora, entities.BitacoraEntry{
			ID:     b.ID,
			At:     at,
			User:   b.User,
			Action: b.Action,
			Detail: b.Detail,
		})
	}
	return e, nil
}
