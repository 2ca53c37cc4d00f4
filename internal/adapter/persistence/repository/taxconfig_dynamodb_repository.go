package repository

import (
	"context"
	"time"

	"notaria_backoffice/internal/domain/entities"
	"notaria_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTaxConfigTableName = "tax_config"

type taxConfigItem struct {
	Tipo                 string `dynamodbav:"tipo"`
	TrasladoPorcentaje   string `dynamodbav:"traslado_porcentaje"`
	DerechoRegistro      string `dynamodbav:"derecho_registro"`
	CertificadoCatastral string `dynamodbav:"certificado_catastral"`
	ConstanciasAdeudo    string `dynamodbav:"constancias_adeudo"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// TaxConfigDynamoRepository persists tax settings rows keyed by document
// type (plus the shared "default" row).
//
// Table requirements:
//   - PK: tipo (string)
//
// Reads are consistent so a settings save is visible to the very next
// budget computation, never half of it.

type TaxConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaxConfigRepository = (*TaxConfigDynamoRepository)(nil)

func NewTaxConfigDynamoRepository(ddb *dynamodb.Client) *TaxConfigDynamoRepository {
	return &TaxConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TAX_CONFIG_TABLE", defaultTaxConfigTableName),
	}
}

func (r *TaxConfigDynamoRepository) Get(ctx context.Context, key string) (entities.TaxConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tipo": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TaxConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.TaxConfig{}, false, nil
	}

	var it taxConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TaxConfig{}, false, err
	}

	var cfg entities.TaxConfig
	if cfg.TrasladoPorcentaje, err = parseDecimal(it.TrasladoPorcentaje); err != nil {
		return entities.TaxConfig{}, false, err
	}
	if cfg.DerechoRegistro, err = parseDecimal(it.DerechoRegistro); err != nil {
		return entities.TaxConfig{}, false, err
	}
	if cfg.CertificadoCatastral, err = parseDecimal(it.CertificadoCatastral); err != nil {
		return entities.TaxConfig{}, false, err
	}
	if cfg.ConstanciasAdeudo, err = parseDecimal(it.ConstanciasAdeudo); err != nil {
		return entities.TaxConfig{}, false, err
	}
	return cfg, true, nil
}

func (r *TaxConfigDynamoRepository) Put(ctx context.Context, key string, cfg entities.TaxConfig) error {
	it := taxConfigItem{
		Tipo:                 key,
		TrasladoPorcentaje:   cfg.TrasladoPorcentaje.String(),
		DerechoRegistro:      cfg.DerechoRegistro.String(),
		CertificadoCatastral: cfg.CertificadoCatastral.String(),
		ConstanciasAdeudo:    cfg.ConstanciasAdeudo.String(),
		UpdatedAt:            time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
